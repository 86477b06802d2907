package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
	"github.com/Invia-shubham/Food_Ordering_Backend/helper"
	"github.com/Invia-shubham/Food_Ordering_Backend/models"
)

func categoryCollection() *mongo.Collection {
	return config.OpenCollection("categories")
}

// CreateCategory adds a new category. Names are unique; the count check gives
// a friendly message and the unique index catches the race.
func CreateCategory(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var category models.Category
	if err := json.NewDecoder(r.Body).Decode(&category); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(category); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := categoryCollection().CountDocuments(ctx, bson.M{"category_name": category.CategoryName})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error checking existing categories")
		return
	}
	if count > 0 {
		helper.RespondError(w, http.StatusBadRequest, "Category already exists")
		return
	}

	category.ID = primitive.NewObjectID()
	category.Category_id = category.ID.Hex()
	category.Created_at = time.Now()
	category.Updated_at = time.Now()

	if _, err := categoryCollection().InsertOne(ctx, category); err != nil {
		helper.WriteStatusForInsert(w, err, "Category already exists", "Category could not be created")
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Category created successfully", category)
}

// GetCategories lists categories, paginated.
func GetCategories(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, limit := paginationParams(r.URL.Query())
	startIndex := (page - 1) * limit

	totalCategories, err := categoryCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving total category count")
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}}},
	}

	cursor, err := categoryCollection().Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Failed to fetch categories")
		return
	}
	defer cursor.Close(ctx)

	categories := []bson.M{}
	if err := cursor.All(ctx, &categories); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding categories")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Categories retrieved successfully",
		"data":    categories,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": limit,
			"total_categories": totalCategories,
			"total_pages":      totalPages(totalCategories, limit),
		},
	})
}
