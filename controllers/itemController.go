package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
	"github.com/Invia-shubham/Food_Ordering_Backend/helper"
	"github.com/Invia-shubham/Food_Ordering_Backend/models"
)

func itemCollection() *mongo.Collection {
	return config.OpenCollection("items")
}

// lookupCategoryStages resolves the category reference inline, keeping items
// whose category has since been deleted (their category comes back null).
func lookupCategoryStages() mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: "categories"},
			{Key: "localField", Value: "category_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "category"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$category"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
	}
}

type itemCreateRequest struct {
	Name        *string `json:"name" validate:"required,min=2,max=100"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity" validate:"required,gte=0"`
	CategoryID  string  `json:"category_id" validate:"required"`
}

// CreateItem persists an item after confirming its category exists.
func CreateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req itemCreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	categoryObjID, err := primitive.ObjectIDFromHex(req.CategoryID)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	count, err := categoryCollection().CountDocuments(ctx, bson.M{"_id": categoryObjID})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error checking category existence")
		return
	}
	if count == 0 {
		helper.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	item := models.Item{
		ID:          primitive.NewObjectID(),
		Name:        req.Name,
		Description: req.Description,
		Quantity:    req.Quantity,
		CategoryID:  categoryObjID,
		Created_at:  time.Now(),
		Updated_at:  time.Now(),
	}
	item.Item_id = item.ID.Hex()

	if _, err := itemCollection().InsertOne(ctx, item); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Item could not be created")
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Item created successfully", item)
}

// GetItems lists all items with their category resolved inline.
func GetItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	cursor, err := itemCollection().Aggregate(ctx, lookupCategoryStages())
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving items")
		return
	}
	defer cursor.Close(ctx)

	items := []models.ItemWithCategory{}
	if err := cursor.All(ctx, &items); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding items")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Items retrieved successfully", items)
}

// GetItem returns a single item by id.
func GetItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var item models.Item
	if err := itemCollection().FindOne(ctx, bson.M{"item_id": itemId}).Decode(&item); err != nil {
		helper.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Item retrieved successfully", item)
}

// GetItemsByCategory lists the items referencing a category. An empty result
// is reported as 404 with an empty items array, not an empty 200.
func GetItemsByCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	categoryId := mux.Vars(r)["category_id"]

	categoryObjID, err := primitive.ObjectIDFromHex(categoryId)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid category ID")
		return
	}

	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.D{{Key: "category_id", Value: categoryObjID}}}},
	}
	pipeline = append(pipeline, lookupCategoryStages()...)

	cursor, err := itemCollection().Aggregate(ctx, pipeline)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving items")
		return
	}
	defer cursor.Close(ctx)

	items := []models.ItemWithCategory{}
	if err := cursor.All(ctx, &items); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding items")
		return
	}

	if len(items) == 0 {
		helper.RespondJSON(w, http.StatusNotFound, map[string]interface{}{
			"success": false,
			"message": "No items found for this category",
			"items":   items,
		})
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Items retrieved successfully", items)
}

type itemUpdateRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Quantity    *int    `json:"quantity"`
	CategoryID  *string `json:"category_id"`
}

// buildItemUpdate turns the supplied fields into a $set document. The category
// reference is not re-validated against the categories collection.
func buildItemUpdate(req itemUpdateRequest) (bson.M, error) {
	updateObj := bson.M{}

	if req.Name != nil {
		updateObj["name"] = *req.Name
	}
	if req.Description != nil {
		updateObj["description"] = *req.Description
	}
	if req.Quantity != nil {
		updateObj["quantity"] = *req.Quantity
	}
	if req.CategoryID != nil {
		categoryObjID, err := primitive.ObjectIDFromHex(*req.CategoryID)
		if err != nil {
			return nil, errors.New("invalid category ID")
		}
		updateObj["category_id"] = categoryObjID
	}

	return updateObj, nil
}

// UpdateItem overwrites the supplied item fields.
func UpdateItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	var req itemUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updateObj, err := buildItemUpdate(req)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updateObj["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Item
	err = itemCollection().
		FindOneAndUpdate(ctx, bson.M{"item_id": itemId}, bson.M{"$set": updateObj}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			helper.RespondError(w, http.StatusNotFound, "Item not found")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Item update failed")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Item updated successfully", updated)
}

// DeleteItem removes an item by id.
func DeleteItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	itemId := mux.Vars(r)["item_id"]

	result, err := itemCollection().DeleteOne(ctx, bson.M{"item_id": itemId})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error deleting item")
		return
	}
	if result.DeletedCount == 0 {
		helper.RespondError(w, http.StatusNotFound, "Item not found")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Item deleted", nil)
}
