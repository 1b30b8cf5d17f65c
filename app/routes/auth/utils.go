package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Roles the two fixed accounts map to. The manager sees the full roster and
// reports; the soldier role only reaches the survey.
const (
	RoleManager = "manager"
	RoleSoldier = "soldier"
)

type JWTClaims struct {
	Role    string `json:"role"`
	Account string `json:"account"`
	jwt.RegisteredClaims
}

var jwtSecret []byte

// SetSecret installs the signing secret. Called once at startup before any
// route is served.
func SetSecret(secret string) {
	jwtSecret = []byte(secret)
}

func GenerateJWT(role, account string) (string, error) {
	claims := JWTClaims{
		Role:    role,
		Account: account,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "mil-mang",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

func ValidateJWT(tokenString string) (*JWTClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*JWTClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, jwt.ErrInvalidKey
}
