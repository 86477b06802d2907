package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
	"github.com/Invia-shubham/Food_Ordering_Backend/helper"
	"github.com/Invia-shubham/Food_Ordering_Backend/models"
)

var validate = validator.New()

func userCollection() *mongo.Collection {
	return config.OpenCollection("users")
}

// SignUp registers a new user.
func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := validate.Struct(user); err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	count, err := userCollection().CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"username": user.Username},
		{"email": user.Email},
	}})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error checking existing users")
		return
	}
	if count > 0 {
		helper.RespondError(w, http.StatusBadRequest, "Username or email already exists")
		return
	}

	hashed, err := HashPassword(*user.Password)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "User creation failed")
		return
	}
	user.Password = &hashed

	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()
	user.Created_at = time.Now()
	user.Updated_at = time.Now()

	if _, err := userCollection().InsertOne(ctx, user); err != nil {
		helper.WriteStatusForInsert(w, err, "Username or email already exists", "User creation failed")
		return
	}

	user.Password = nil
	helper.RespondSuccess(w, http.StatusCreated, "User created successfully", user)
}

// Login checks credentials and issues a 24-hour token. The error message is
// the same whether the email is unknown or the password is wrong.
func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var foundUser models.User
	err := userCollection().FindOne(ctx, bson.M{"email": req.Email}).Decode(&foundUser)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	if !VerifyPassword(req.Password, *foundUser.Password) {
		helper.RespondError(w, http.StatusBadRequest, "Invalid Credentials")
		return
	}

	token, err := helper.GenerateToken(foundUser.User_id)
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Could not issue token")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"message": "Login Successfully",
		"token":   token,
		"user": map[string]interface{}{
			"user_name":  foundUser.Username,
			"email":      foundUser.Email,
			"first_name": foundUser.FirstName,
			"last_name":  foundUser.LastName,
		},
	})
}

// GetUsers lists users, paginated, passwords projected out.
func GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	page, limit := paginationParams(r.URL.Query())
	startIndex := (page - 1) * limit

	totalUsers, err := userCollection().CountDocuments(ctx, bson.M{})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing users")
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(limit)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "password", Value: 0},
		}},
	}

	cursor, err := userCollection().Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error occurred while listing users")
		return
	}
	defer cursor.Close(ctx)

	allUsers := []bson.M{}
	if err := cursor.All(ctx, &allUsers); err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Error decoding users")
		return
	}

	helper.RespondJSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    allUsers,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": limit,
			"total_users":      totalUsers,
			"total_pages":      totalPages(totalUsers, limit),
		},
	})
}

// GetUser returns a single user by id.
func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]

	var user models.User
	if err := userCollection().FindOne(ctx, bson.M{"user_id": userId}).Decode(&user); err != nil {
		helper.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	user.Password = nil
	helper.RespondSuccess(w, http.StatusOK, "User retrieved successfully", user)
}

type userUpdateRequest struct {
	Username   *string `json:"username"`
	Email      *string `json:"email"`
	Password   *string `json:"password"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	ProfilePic *string `json:"profile_pic"`
}

// buildUserUpdate turns the supplied fields into a $set document. Omitted and
// empty fields are left unchanged; a supplied password comes back hashed.
func buildUserUpdate(req userUpdateRequest) (bson.M, error) {
	updateObj := bson.M{}

	if req.Username != nil && *req.Username != "" {
		if len(*req.Username) < 3 || len(*req.Username) > 30 {
			return nil, errors.New("username must be 3-30 characters")
		}
		updateObj["username"] = *req.Username
	}
	if req.Email != nil && *req.Email != "" {
		if err := validate.Var(*req.Email, "email"); err != nil {
			return nil, errors.New("invalid email address")
		}
		updateObj["email"] = *req.Email
	}
	if req.Password != nil && *req.Password != "" {
		if len(*req.Password) < 6 {
			return nil, errors.New("password must be at least 6 characters")
		}
		hashed, err := HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		updateObj["password"] = hashed
	}
	if req.FirstName != nil && *req.FirstName != "" {
		updateObj["first_name"] = *req.FirstName
	}
	if req.LastName != nil && *req.LastName != "" {
		updateObj["last_name"] = *req.LastName
	}
	if req.ProfilePic != nil && *req.ProfilePic != "" {
		updateObj["profile_pic"] = *req.ProfilePic
	}

	return updateObj, nil
}

// UpdateUser applies a partial update to a user.
func UpdateUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]

	var req userUpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		helper.RespondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	updateObj, err := buildUserUpdate(req)
	if err != nil {
		helper.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	updateObj["updated_at"] = time.Now()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.User
	err = userCollection().
		FindOneAndUpdate(ctx, bson.M{"user_id": userId}, bson.M{"$set": updateObj}, opts).
		Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			helper.RespondError(w, http.StatusNotFound, "User not found")
			return
		}
		if mongo.IsDuplicateKeyError(err) {
			helper.RespondError(w, http.StatusBadRequest, "Username or email already exists")
			return
		}
		helper.RespondError(w, http.StatusInternalServerError, "Failed to update user")
		return
	}

	updated.Password = nil
	helper.RespondSuccess(w, http.StatusOK, "User updated successfully", updated)
}

// DeleteUser removes a user by id.
func DeleteUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userId := mux.Vars(r)["user_id"]

	result, err := userCollection().DeleteOne(ctx, bson.M{"user_id": userId})
	if err != nil {
		helper.RespondError(w, http.StatusInternalServerError, "Failed to delete user")
		return
	}
	if result.DeletedCount == 0 {
		helper.RespondError(w, http.StatusNotFound, "User not found")
		return
	}

	helper.RespondSuccess(w, http.StatusOK, "User deleted successfully", nil)
}

func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 10)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}

func VerifyPassword(providedPassword, storedHash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(providedPassword)) == nil
}
