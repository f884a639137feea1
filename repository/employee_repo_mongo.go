package repository

import (
	"context"
	"errors"
	"time"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const employeesCollection = "Employee"

type MongoEmployeeRepo struct {
	DB *mongo.Database
}

func NewMongoEmployeeRepo(db *mongo.Database) *MongoEmployeeRepo {
	return &MongoEmployeeRepo{DB: db}
}

func (r *MongoEmployeeRepo) ListOwnedBy(ctx context.Context, userID primitive.ObjectID) ([]*models.Employee, error) {
	return r.list(ctx, bson.M{"userIds": userID})
}

func (r *MongoEmployeeRepo) ListByListID(ctx context.Context, listID primitive.ObjectID) ([]*models.Employee, error) {
	return r.list(ctx, bson.M{"listId": listID})
}

func (r *MongoEmployeeRepo) list(ctx context.Context, filter bson.M) ([]*models.Employee, error) {
	cur, err := r.DB.Collection(employeesCollection).Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.Employee{}
	for cur.Next(ctx) {
		var e models.Employee
		if err := cur.Decode(&e); err != nil {
			return nil, err
		}
		out = append(out, &e)
	}

	return out, cur.Err()
}

func (r *MongoEmployeeRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Employee, error) {
	employee := &models.Employee{}

	err := r.DB.Collection(employeesCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(employee)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return employee, nil
}

func (r *MongoEmployeeRepo) Create(ctx context.Context, fields EmployeeFields, ownerID primitive.ObjectID) (*models.Employee, error) {
	employee := &models.Employee{
		FirstName:   fields.FirstName,
		LastName:    fields.LastName,
		Age:         fields.Age,
		Address:     fields.Address,
		PhoneNumber: fields.PhoneNumber,
		CreatedAt:   time.Now().UTC().Format(time.RFC3339),
		UserIDs:     []primitive.ObjectID{ownerID},
		ListID:      fields.ListID,
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	stored := &models.Employee{}
	err := r.DB.Collection(employeesCollection).
		FindOneAndUpdate(ctx, employee, bson.M{"$set": bson.M{}}, opts).
		Decode(stored)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *MongoEmployeeRepo) Update(ctx context.Context, id primitive.ObjectID, fields EmployeeFields) (*models.Employee, error) {
	_, err := r.DB.Collection(employeesCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
			"firstName":   fields.FirstName,
			"lastName":    fields.LastName,
			"age":         fields.Age,
			"address":     fields.Address,
			"phoneNumber": fields.PhoneNumber,
		}})
	if err != nil {
		return nil, err
	}

	return r.GetByID(ctx, id)
}

func (r *MongoEmployeeRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, err := r.DB.Collection(employeesCollection).
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	// The delete count is deliberately not inspected.
	return true, nil
}
