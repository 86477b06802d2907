package controller

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Invia-shubham/Food_Ordering_Backend/models"
)

func strPtr(s string) *string { return &s }

func TestSignUpValidation(t *testing.T) {
	valid := models.User{
		Username: strPtr("ann"),
		Email:    strPtr("a@x.com"),
		Password: strPtr("secret1"),
	}
	require.NoError(t, validate.Struct(valid))

	tests := []struct {
		name   string
		mutate func(u *models.User)
	}{
		{"missing username", func(u *models.User) { u.Username = nil }},
		{"short username", func(u *models.User) { u.Username = strPtr("ab") }},
		{"long username", func(u *models.User) { u.Username = strPtr("abcdefghijklmnopqrstuvwxyz01234") }},
		{"missing email", func(u *models.User) { u.Email = nil }},
		{"malformed email", func(u *models.User) { u.Email = strPtr("not-an-email") }},
		{"missing password", func(u *models.User) { u.Password = nil }},
		{"short password", func(u *models.User) { u.Password = strPtr("12345") }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user := valid
			tt.mutate(&user)
			assert.Error(t, validate.Struct(user))
		})
	}
}

func TestBuildUserUpdatePresence(t *testing.T) {
	updateObj, err := buildUserUpdate(userUpdateRequest{})
	require.NoError(t, err)
	assert.Empty(t, updateObj)

	updateObj, err = buildUserUpdate(userUpdateRequest{
		FirstName: strPtr("Ann"),
		LastName:  strPtr("Smith"),
	})
	require.NoError(t, err)
	assert.Equal(t, "Ann", updateObj["first_name"])
	assert.Equal(t, "Smith", updateObj["last_name"])
	assert.NotContains(t, updateObj, "username")
	assert.NotContains(t, updateObj, "password")

	// An empty string behaves like an omitted field; it cannot clear a value.
	updateObj, err = buildUserUpdate(userUpdateRequest{FirstName: strPtr("")})
	require.NoError(t, err)
	assert.Empty(t, updateObj)
}

func TestBuildUserUpdateValidation(t *testing.T) {
	_, err := buildUserUpdate(userUpdateRequest{Username: strPtr("ab")})
	assert.Error(t, err)

	_, err = buildUserUpdate(userUpdateRequest{Email: strPtr("nope")})
	assert.Error(t, err)

	_, err = buildUserUpdate(userUpdateRequest{Password: strPtr("12345")})
	assert.Error(t, err)
}

func TestBuildUserUpdateRehashesPassword(t *testing.T) {
	updateObj, err := buildUserUpdate(userUpdateRequest{Password: strPtr("secret1")})
	require.NoError(t, err)

	hashed, ok := updateObj["password"].(string)
	require.True(t, ok)
	assert.NotEqual(t, "secret1", hashed)
	assert.True(t, VerifyPassword("secret1", hashed))
	assert.False(t, VerifyPassword("wrong", hashed))
}

func TestHashAndVerifyPassword(t *testing.T) {
	hashed, err := HashPassword("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", hashed)

	assert.True(t, VerifyPassword("secret1", hashed))
	assert.False(t, VerifyPassword("secret2", hashed))
}
