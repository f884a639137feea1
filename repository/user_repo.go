package repository

import (
	"context"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserRepository defines the interface for user operations
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	// FindManyByID looks the users up concurrently and preserves the
	// input order in the result; a missing user yields a nil entry at
	// its position instead of shortening the slice.
	FindManyByID(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error)
	// Upsert performs a find-or-create keyed by the whole document and
	// returns the stored state. The random bcrypt salt makes the filter
	// effectively unique, so in practice this inserts.
	Upsert(ctx context.Context, user *models.User) (*models.User, error)
}
