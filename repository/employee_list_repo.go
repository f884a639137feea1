package repository

import (
	"context"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeListRepository defines the interface for employee list operations
type EmployeeListRepository interface {
	ListOwnedBy(ctx context.Context, userID primitive.ObjectID) ([]*models.EmployeeList, error)
	Create(ctx context.Context, title string, ownerID primitive.ObjectID) (*models.EmployeeList, error)
	Update(ctx context.Context, id primitive.ObjectID, title string) (*models.EmployeeList, error)
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
