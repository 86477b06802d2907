package controller

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestPaginationParams(t *testing.T) {
	tests := []struct {
		name      string
		query     string
		wantPage  int
		wantLimit int
	}{
		{"defaults", "", 1, 10},
		{"explicit", "page=3&limit=25", 3, 25},
		{"zero page falls back", "page=0&limit=5", 1, 5},
		{"negative limit falls back", "page=2&limit=-1", 2, 10},
		{"non-numeric falls back", "page=abc&limit=xyz", 1, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			page, limit := paginationParams(values)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantLimit, limit)
		})
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, int64(0), totalPages(0, 10))
	assert.Equal(t, int64(1), totalPages(1, 10))
	assert.Equal(t, int64(1), totalPages(10, 10))
	assert.Equal(t, int64(2), totalPages(11, 10))
	assert.Equal(t, int64(10), totalPages(100, 10))
}

func TestBuildFoodFilter(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  bson.M
	}{
		{"empty", "", bson.M{}},
		{"category only", "category=vegan", bson.M{"category": "vegan"}},
		{"available true", "isAvailable=true", bson.M{"is_available": true}},
		{"available false", "isAvailable=false", bson.M{"is_available": false}},
		{"min price", "minPrice=100", bson.M{"price": bson.M{"$gte": 100.0}}},
		{"max price", "maxPrice=500", bson.M{"price": bson.M{"$lte": 500.0}}},
		{
			"price range",
			"minPrice=100&maxPrice=500",
			bson.M{"price": bson.M{"$gte": 100.0, "$lte": 500.0}},
		},
		{
			"all combined",
			"category=dessert&isAvailable=true&minPrice=50&maxPrice=150",
			bson.M{
				"category":     "dessert",
				"is_available": true,
				"price":        bson.M{"$gte": 50.0, "$lte": 150.0},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values, err := url.ParseQuery(tt.query)
			require.NoError(t, err)

			filter, err := buildFoodFilter(values)
			require.NoError(t, err)
			assert.Equal(t, tt.want, filter)
		})
	}
}

func TestBuildFoodFilterBadPrices(t *testing.T) {
	for _, query := range []string{"minPrice=cheap", "maxPrice=expensive"} {
		values, err := url.ParseQuery(query)
		require.NoError(t, err)

		_, err = buildFoodFilter(values)
		assert.Error(t, err, "query %q should be rejected", query)
	}
}

func TestBuildFoodUpdateEmpty(t *testing.T) {
	_, err := buildFoodUpdate(foodUpdateRequest{})
	require.Error(t, err)
	assert.Equal(t, "No fields to update", err.Error())
}

func TestBuildFoodUpdate(t *testing.T) {
	name := "Paneer Tikka"
	price := 160.0
	available := false

	updateObj, err := buildFoodUpdate(foodUpdateRequest{
		Name:        &name,
		Price:       &price,
		IsAvailable: &available,
	})
	require.NoError(t, err)

	assert.Equal(t, bson.M{
		"name":         "Paneer Tikka",
		"price":        160.0,
		"is_available": false,
	}, updateObj)
}

func TestBuildFoodUpdateInvariants(t *testing.T) {
	badRating := 6.0
	_, err := buildFoodUpdate(foodUpdateRequest{Rating: &badRating})
	assert.Error(t, err)

	lowRating := 0.5
	_, err = buildFoodUpdate(foodUpdateRequest{Rating: &lowRating})
	assert.Error(t, err)

	okRating := 4.5
	updateObj, err := buildFoodUpdate(foodUpdateRequest{Rating: &okRating})
	require.NoError(t, err)
	assert.Equal(t, 4.5, updateObj["rating"])

	badCategory := "fusion"
	_, err = buildFoodUpdate(foodUpdateRequest{Category: &badCategory})
	assert.Error(t, err)

	okCategory := "non-vegetarian"
	updateObj, err = buildFoodUpdate(foodUpdateRequest{Category: &okCategory})
	require.NoError(t, err)
	assert.Equal(t, "non-vegetarian", updateObj["category"])
}
