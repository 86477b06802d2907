package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Category_id  string             `bson:"category_id" json:"category_id"`
	CategoryName *string            `bson:"category_name" json:"category_name" validate:"required,min=2,max=50"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}
