package auth

import "errors"

var (
	// ErrNotAuthenticated is returned by every guarded operation when
	// the request carries no resolved principal. The message is part of
	// the API contract and is surfaced to clients verbatim.
	ErrNotAuthenticated = errors.New("Authentication Error. Please sign in")

	// ErrInvalidCredentials is returned by sign-in for both an unknown
	// email and a wrong password, so the two cases are indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrInvalidToken = errors.New("invalid token")
)
