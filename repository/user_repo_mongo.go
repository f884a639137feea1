package repository

import (
	"context"
	"errors"

	"employeegraph/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

const usersCollection = "Users"

type MongoUserRepo struct {
	DB *mongo.Database
}

func NewMongoUserRepo(db *mongo.Database) *MongoUserRepo {
	return &MongoUserRepo{DB: db}
}

func (r *MongoUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	user := &models.User{}

	err := r.DB.Collection(usersCollection).
		FindOne(ctx, bson.M{"email": email}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

func (r *MongoUserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user := &models.User{}

	err := r.DB.Collection(usersCollection).
		FindOne(ctx, bson.M{"_id": id}).Decode(user)

	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}

	return user, nil
}

// FindManyByID issues one lookup per id concurrently, so total latency
// is bounded by the slowest single lookup. Result order matches the
// input; missing users stay nil.
func (r *MongoUserRepo) FindManyByID(ctx context.Context, ids []primitive.ObjectID) ([]*models.User, error) {
	out := make([]*models.User, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			user, err := r.FindByID(gctx, id)
			if err != nil {
				return err
			}
			out[i] = user
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (r *MongoUserRepo) Upsert(ctx context.Context, user *models.User) (*models.User, error) {
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	stored := &models.User{}
	err := r.DB.Collection(usersCollection).
		FindOneAndUpdate(ctx, user, bson.M{"$set": bson.M{}}, opts).
		Decode(stored)
	if err != nil {
		return nil, err
	}

	return stored, nil
}
