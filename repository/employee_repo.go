package repository

import (
	"context"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EmployeeFields carries the mutable fields of an employee record for
// create and update operations.
type EmployeeFields struct {
	FirstName   string
	LastName    string
	Age         int32
	Address     string
	PhoneNumber string
	ListID      *primitive.ObjectID
}

// EmployeeRepository defines the interface for employee record operations
type EmployeeRepository interface {
	// ListOwnedBy returns every record whose owner set contains userID,
	// in storage order.
	ListOwnedBy(ctx context.Context, userID primitive.ObjectID) ([]*models.Employee, error)
	ListByListID(ctx context.Context, listID primitive.ObjectID) ([]*models.Employee, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error)
	// Create stamps the record with the current instant and makes
	// ownerID its sole owner.
	Create(ctx context.Context, fields EmployeeFields, ownerID primitive.ObjectID) (*models.Employee, error)
	// Update sets the fields on the matching record unconditionally and
	// returns the re-fetched state; an unknown id is a no-op returning
	// nil, nil.
	Update(ctx context.Context, id primitive.ObjectID, fields EmployeeFields) (*models.Employee, error)
	// Delete removes the matching record. It reports true even when
	// nothing matched.
	Delete(ctx context.Context, id primitive.ObjectID) (bool, error)
}
