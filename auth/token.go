package auth

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// IssueJWT generates a signed session token for a user.
func IssueJWT(userID, email string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"email":   email,
		"exp":     time.Now().Add(24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
