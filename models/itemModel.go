package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Item struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Item_id     string             `bson:"item_id" json:"item_id"`
	Name        *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Description *string            `bson:"description" json:"description,omitempty"`
	Quantity    *int               `bson:"quantity" json:"quantity" validate:"required,gte=0"`
	CategoryID  primitive.ObjectID `bson:"category_id" json:"category_id"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
	Updated_at  time.Time          `bson:"updated_at" json:"updated_at"`
}

// ItemWithCategory is the listing shape where the category reference is
// resolved inline. Category is nil when the referenced document no longer
// exists (deleting a category does not cascade to its items).
type ItemWithCategory struct {
	Item     `bson:",inline"`
	Category *Category `bson:"category" json:"category"`
}
