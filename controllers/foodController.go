package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
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

func foodCollection() *mongo.Collection {
	return config.OpenCollection("foods")
}

// paginationParams reads page/limit from the query string, defaulting to 1/10.
func paginationParams(values url.Values) (page, limit int) {
	page, err := strconv.Atoi(values.Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err = strconv.Atoi(values.Get("limit"))
	if err != nil || limit < 1 {
		limit = 10
	}
	return page, limit
}

func totalPages(total int64, limit int) int64 {
	return (total + int64(limit) - 1) / int64(limit)
}

// buildFoodFilter assembles the conjunctive listing filter from the optional
// category/isAvailable/minPrice/maxPrice query parameters.
func buildFoodFilter(values url.Values) (bson.M, error) {
	filter := bson.M{}

	if category := values.Get("category"); category != "" {
		filter["category"] = category
	}

	if isAvailable := values.Get("isAvailable"); isAvailable != "" {
		filter["is_available"] = isAvailable == "true"
	}

	price := bson.M{}
	if minPrice := values.Get("minPrice"); minPrice != "" {
		min, err := strconv.ParseFloat(minPrice, 64)
		if err != nil {
			return nil, errors.New("invalid minPrice")
		}
		price["$gte"] = min
	}
	if maxPrice := values.Get("maxPrice"); maxPrice != "" {
		max, err := strconv.ParseFloat(maxPrice, 64)
		if err != nil {
			return nil, errors.New("invalid maxPrice")
		}
		price["$lte"] = max
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	return filter, nil
}

// CreateFood adds a food item to the catalog.
func CreateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var food models.Food
	if err := json.NewDecoder(r.Body).Decode(&food); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(food); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Please provide all required fields")
		return
	}

	if food.IsAvailable == nil {
		available := true
		food.IsAvailable = &available
	}

	food.ID = primitive.NewObjectID()
	food.Food_id = food.ID.Hex()
	food.Created_at = time.Now()
	food.Updated_at = time.Now()

	if _, err := foodCollection().InsertOne(ctx, food); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Food item could not be created")
		return
	}

	helper.RespondSuccess(w, http.StatusCreated, "Food item added successfully", food)
}

// GetFoods lists food items with optional filters and pagination.
func GetFoods(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	filter, err := buildFoodFilter(r.URL.Query())
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	page, limit := paginationParams(r.URL.Query())
	startIndex := (page - 1) * limit

	totalFood, err := foodCollection().CountDocuments(ctx, filter)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving total food count")
		return
	}

	matchStage := bson.D{{Key: "$match", Value: filter}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{{Key: "_id", Value: 0}}},
	}

	cursor, err := foodCollection().Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error retrieving food items")
		return
	}
	defer cursor.Close(ctx)

	foodItems := []bson.M{}
	if err := cursor.All(ctx, &foodItems); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding food items")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Food items fetched successfully",
		"data":    foodItems,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": limit,
			"total_food":       totalFood,
			"total_pages":      totalPages(totalFood, limit),
		},
	})
}

// GetFood returns a single food item.
func GetFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	foodId := mux.Vars(r)["food_id"]

	var food models.Food
	if err := foodCollection().FindOne(ctx, bson.M{"food_id": foodId}).Decode(&food); err != nil {
		helper.RespondError(w, http.StatusNotFound, "Food item not found")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Food item retrieved successfully", food)
}

type foodUpdateRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Category    *string  `json:"category"`
	Ingredients []string `json:"ingredients"`
	IsAvailable *bool    `json:"is_available"`
	Rating      *float64 `json:"rating"`
	Servings    *int     `json:"servings"`
}

// buildFoodUpdate turns the supplied fields into a $set document. Returns an
// error when nothing was supplied or a supplied value breaks an invariant.
func buildFoodUpdate(req foodUpdateRequest) (bson.M, error) {
	updateObj := bson.M{}

	if req.Name != nil {
		updateObj["name"] = *req.Name
	}
	if req.Description != nil {
		updateObj["description"] = *req.Description
	}
	if req.Price != nil {
		updateObj["price"] = *req.Price
	}
	if req.Image != nil {
		updateObj["image"] = *req.Image
	}
	if req.Category != nil {
		if err := validate.Var(*req.Category, "oneof=vegetarian non-vegetarian vegan dessert"); err != nil {
			return nil, errors.New("invalid category")
		}
		updateObj["category"] = *req.Category
	}
	if req.Ingredients != nil {
		updateObj["ingredients"] = req.Ingredients
	}
	if req.IsAvailable != nil {
		updateObj["is_available"] = *req.IsAvailable
	}
	if req.Rating != nil {
		if *req.Rating < 1 || *req.Rating > 5 {
			return nil, errors.New("rating must be between 1 and 5")
		}
		updateObj["rating"] = *req.Rating
	}
	if req.Servings != nil {
		updateObj["servings"] = *req.Servings
	}

	if len(updateObj) == 0 {
		return nil, errors.New("No fields to update")
	}

	return updateObj, nil
}

// UpdateFood applies a partial update to a food item and refreshes updated_at.
func UpdateFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	foodId := mux.Vars(r)["food_id"]

	var req foodUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updateObj, err := buildFoodUpdate(req)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updateObj["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Food
	err = foodCollection().
		FindOneAndUpdate(ctx, bson.M{"food_id": foodId}, bson.M{"$set": updateObj}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			helper.RespondError(w, http.StatusNotFound, "Food item not found")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Food item update failed")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Food item updated successfully", updated)
}

// DeleteFood removes a food item.
func DeleteFood(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	foodId := mux.Vars(r)["food_id"]

	result, err := foodCollection().DeleteOne(ctx, bson.M{"food_id": foodId})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error deleting food item")
		return
	}
	if result.DeletedCount == 0 {
		helper.RespondError(w, http.StatusNotFound, "Food item not found")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "Food item deleted successfully", nil)
}
