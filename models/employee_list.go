package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type EmployeeList struct {
	ID        primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	Title     string               `json:"title" bson:"title"`
	CreatedAt string               `json:"created_at" bson:"createdAt"`
	UserIDs   []primitive.ObjectID `json:"user_ids" bson:"userIds"`
}
