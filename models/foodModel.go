package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Food struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Food_id     string             `bson:"food_id" json:"food_id"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description *string            `bson:"description" json:"description,omitempty"`
	Price       *float64           `bson:"price" json:"price" validate:"required,gt=0"`
	Image       *string            `bson:"image" json:"image" validate:"required"`
	Category    *string            `bson:"category" json:"category" validate:"required,oneof=vegetarian non-vegetarian vegan dessert"`
	Ingredients []string           `bson:"ingredients" json:"ingredients" validate:"required,min=1,dive,required"`
	IsAvailable *bool              `bson:"is_available" json:"is_available"`
	Rating      *float64           `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Servings    *int               `bson:"servings" json:"servings" validate:"required,gt=0"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}
