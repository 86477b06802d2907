package helper

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Invia-shubham/Food_Ordering_Backend/config"
)

type SignedDetails struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

const tokenValidity = 24 * time.Hour

// GenerateToken issues a signed JWT carrying the user id, expiring 24 hours
// from now.
func GenerateToken(userID string) (string, error) {
	claims := &SignedDetails{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenValidity)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.App.SecretKey))
}

// ValidateToken checks signature and expiry and returns the embedded claims.
func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(config.App.SecretKey), nil
		},
	)
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, errors.New("the token is invalid")
	}

	return claims, nil
}
