package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func intPtr(i int) *int { return &i }

func TestItemCreateValidation(t *testing.T) {
	valid := itemCreateRequest{
		Name:       strPtr("Tomatoes"),
		Quantity:   intPtr(12),
		CategoryID: primitive.NewObjectID().Hex(),
	}
	require.NoError(t, validate.Struct(valid))

	missingName := valid
	missingName.Name = nil
	assert.Error(t, validate.Struct(missingName))

	missingQuantity := valid
	missingQuantity.Quantity = nil
	assert.Error(t, validate.Struct(missingQuantity))

	missingCategory := valid
	missingCategory.CategoryID = ""
	assert.Error(t, validate.Struct(missingCategory))

	negativeQuantity := valid
	negativeQuantity.Quantity = intPtr(-1)
	assert.Error(t, validate.Struct(negativeQuantity))
}

func TestBuildItemUpdate(t *testing.T) {
	categoryID := primitive.NewObjectID()

	updateObj, err := buildItemUpdate(itemUpdateRequest{
		Name:       strPtr("Onions"),
		Quantity:   intPtr(3),
		CategoryID: strPtr(categoryID.Hex()),
	})
	require.NoError(t, err)

	assert.Equal(t, "Onions", updateObj["name"])
	assert.Equal(t, 3, updateObj["quantity"])
	assert.Equal(t, categoryID, updateObj["category_id"])
	assert.NotContains(t, updateObj, "description")
}

func TestBuildItemUpdateBadCategoryID(t *testing.T) {
	_, err := buildItemUpdate(itemUpdateRequest{CategoryID: strPtr("not-a-hex-id")})
	assert.Error(t, err)
}
