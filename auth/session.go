package auth

import (
	"context"
	"strings"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ctxKey struct{}

// WithUser attaches the resolved principal to the request context.
func WithUser(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, ctxKey{}, user)
}

// UserFromContext returns the principal resolved for this request, or
// nil for an anonymous request.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(ctxKey{}).(*models.User)
	return user
}

// UserSource is the part of the user repository session resolution needs.
type UserSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// SessionResolver turns the Authorization header of an incoming request
// into a principal. It runs once per request.
type SessionResolver struct {
	Tokens *TokenService
	Users  UserSource
}

func NewSessionResolver(tokens *TokenService, users UserSource) *SessionResolver {
	return &SessionResolver{Tokens: tokens, Users: users}
}

// Resolve returns the user the header's token belongs to, or nil for an
// anonymous request. A missing header, a failed verification, a
// malformed user id, and an unknown user all resolve to anonymous; none
// of them is an error.
func (s *SessionResolver) Resolve(ctx context.Context, header string) *models.User {
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" {
		return nil
	}

	userID, err := s.Tokens.Verify(token)
	if err != nil {
		return nil
	}

	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil
	}

	user, err := s.Users.FindByID(ctx, oid)
	if err != nil {
		return nil
	}
	return user
}
