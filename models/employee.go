package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Employee struct {
	ID          primitive.ObjectID   `json:"id" bson:"_id,omitempty"`
	FirstName   string               `json:"first_name" bson:"firstName"`
	LastName    string               `json:"last_name" bson:"lastName"`
	Age         int32                `json:"age" bson:"age"`
	Address     string               `json:"address" bson:"address"`
	PhoneNumber string               `json:"phone_number" bson:"phoneNumber"`
	CreatedAt   string               `json:"created_at" bson:"createdAt"`
	UserIDs     []primitive.ObjectID `json:"user_ids" bson:"userIds"`
	ListID      *primitive.ObjectID  `json:"list_id,omitempty" bson:"listId,omitempty"`
}
