package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueToken signs a session token for the given account. The secret
// comes from JWT_SECRET so tests and deployments can rotate it freely.
func IssueToken(userID, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
