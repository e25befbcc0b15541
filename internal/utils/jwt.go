package utils

import (
	"errors"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// accessTokenLifetime matches the 5-day window the portal client expects.
const accessTokenLifetime = 5 * 24 * time.Hour

type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Read lazily so godotenv.Load in main has run before first use.
func jwtSecret() []byte {
	return []byte(os.Getenv("ACCESS_TOKEN"))
}

// GenerateJWT creates a signed access token for the given email.
func GenerateJWT(email string) (string, error) {
	secret := jwtSecret()
	if len(secret) == 0 {
		log.Println("CRITICAL: ACCESS_TOKEN is not configured. Cannot generate token.")
		return "", errors.New("ACCESS_TOKEN is not configured")
	}

	claims := &Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(accessTokenLifetime)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateJWT validates a given token string, including its expiry.
func ValidateJWT(tokenStr string) (*Claims, error) {
	secret := jwtSecret()
	if len(secret) == 0 {
		log.Println("CRITICAL: ACCESS_TOKEN is not configured. Cannot validate token.")
		return nil, errors.New("ACCESS_TOKEN is not configured")
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
