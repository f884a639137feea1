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

const employeeListsCollection = "EmployeeList"

type MongoEmployeeListRepo struct {
	DB *mongo.Database
}

func NewMongoEmployeeListRepo(db *mongo.Database) *MongoEmployeeListRepo {
	return &MongoEmployeeListRepo{DB: db}
}

func (r *MongoEmployeeListRepo) ListOwnedBy(ctx context.Context, userID primitive.ObjectID) ([]*models.EmployeeList, error) {
	cur, err := r.DB.Collection(employeeListsCollection).
		Find(ctx, bson.M{"userIds": userID})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []*models.EmployeeList{}
	for cur.Next(ctx) {
		var l models.EmployeeList
		if err := cur.Decode(&l); err != nil {
			return nil, err
		}
		out = append(out, &l)
	}

	return out, cur.Err()
}

func (r *MongoEmployeeListRepo) Create(ctx context.Context, title string, ownerID primitive.ObjectID) (*models.EmployeeList, error) {
	list := &models.EmployeeList{
		Title:     title,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		UserIDs:   []primitive.ObjectID{ownerID},
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	stored := &models.EmployeeList{}
	err := r.DB.Collection(employeeListsCollection).
		FindOneAndUpdate(ctx, list, bson.M{"$set": bson.M{}}, opts).
		Decode(stored)
	if err != nil {
		return nil, err
	}

	return stored, nil
}

func (r *MongoEmployeeListRepo) Update(ctx context.Context, id primitive.ObjectID, title string) (*models.EmployeeList, error) {
	_, err := r.DB.Collection(employeeListsCollection).
		UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"title": title}})
	if err != nil {
		return nil, err
	}

	list := &models.EmployeeList{}
	err = r.DB.Collection(employeeListsCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(list)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return list, nil
}

func (r *MongoEmployeeListRepo) Delete(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, err := r.DB.Collection(employeeListsCollection).
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}

	return true, nil
}
