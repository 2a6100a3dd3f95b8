package jwt

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"movie-catalog-service/internal/model"
)

const tokenTTL = time.Hour

// GenerateToken issues a signed access token for the account. The token
// carries the account id, username and role and expires after one hour.
func GenerateToken(account *model.Account) (string, error) {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	claims := jwt.MapClaims{
		"id":       account.ID.String(),
		"username": account.Username,
		"role":     account.Role,
		"exp":      time.Now().Add(tokenTTL).Unix(),
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret)
}

// ValidateToken parses and verifies a token string and returns its claims.
func ValidateToken(tokenString string) (jwt.MapClaims, error) {
	jwtSecret := []byte(os.Getenv("JWT_SECRET"))

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return jwtSecret, nil
	})

	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, jwt.ErrInvalidKey
}
