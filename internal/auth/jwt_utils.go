package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is what a signed token carries about the logged-in user.
type Claims struct {
	UserID           uint   `json:"user_id"`
	RegistrationType string `json:"registration_type"`
	jwt.RegisteredClaims
}

func signingKey() []byte {
	if key := os.Getenv("JWT_SECRET"); key != "" {
		return []byte(key)
	}
	// Development fallback; set JWT_SECRET in production.
	return []byte("brew_and_bite_dev_secret")
}

// GenerateToken creates a signed JWT for a user, valid for one day.
func GenerateToken(userID uint, registrationType string) (string, error) {
	claims := &Claims{
		UserID:           userID,
		RegistrationType: registrationType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(signingKey())
}

// ValidateToken checks a token's signature and expiry and returns its claims.
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return signingKey(), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
