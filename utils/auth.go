package utils

import (
	"time"

	"github.com/dgrijalva/jwt-go"
)

// JwtKey signs authentication tokens. Loaded from JWT_SECRET at startup.
var JwtKey []byte

// Claims are the JWT claims carried by authenticated requests.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"` // "customer" or "restaurant"
	jwt.StandardClaims
}

// GenerateJWT mints a signed token for a user, valid for 24 hours.
func GenerateJWT(email, role string) (string, error) {
	claims := &Claims{
		Email: email,
		Role:  role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(24 * time.Hour).Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(JwtKey)
}
