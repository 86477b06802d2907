package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/Invia-shubham/Food_Ordering_Backend/helper"
)

type contextKey string

const UserIDKey contextKey = "user_id"

// Authentication guards protected routes. Expects "Authorization: Bearer <token>".
func Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		clientToken := r.Header.Get("Authorization")
		if clientToken == "" {
			helper.RespondError(w, http.StatusUnauthorized, "No Authorization header provided")
			return
		}

		tokenParts := strings.Split(clientToken, " ")
		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			helper.RespondError(w, http.StatusUnauthorized, "Invalid Authorization format")
			return
		}

		claims, err := helper.ValidateToken(tokenParts[1])
		if err != nil {
			helper.RespondError(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetUserID retrieves the authenticated user's id from the request context.
func GetUserID(r *http.Request) string {
	uid, _ := r.Context().Value(UserIDKey).(string)
	return uid
}
