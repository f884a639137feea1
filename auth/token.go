package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenValidity is how long an issued identity token stays valid.
const TokenValidity = 30 * 24 * time.Hour

type Claims struct {
	jwt.RegisteredClaims
	UserID string `json:"id"`
}

// TokenService issues and verifies HS256-signed identity tokens.
type TokenService struct {
	secret   []byte
	validity time.Duration
}

func NewTokenService(secret []byte) *TokenService {
	return &TokenService{secret: secret, validity: TokenValidity}
}

// Issue produces a signed token carrying the user id, valid for 30 days.
func (s *TokenService) Issue(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded user id.
// Malformed, expired, and signature-mismatched tokens all fail the same
// way; expiry is enforced here, not at issue time.
func (s *TokenService) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		return "", err
	}

	if !token.Valid || claims.UserID == "" {
		return "", ErrInvalidToken
	}

	return claims.UserID, nil
}
