package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	User_id    string             `bson:"user_id" json:"user_id"`
	Username   *string            `bson:"username" json:"username" validate:"required,min=3,max=30"`
	Email      *string            `bson:"email" json:"email" validate:"required,email"`
	Password   *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	FirstName  *string            `bson:"first_name" json:"first_name,omitempty"`
	LastName   *string            `bson:"last_name" json:"last_name,omitempty"`
	ProfilePic *string            `bson:"profile_pic" json:"profile_pic,omitempty"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
	Updated_at time.Time          `bson:"updated_at" json:"updated_at"`
}
