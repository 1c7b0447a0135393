package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/quillhq/quill/pkg/internal/models"
	"github.com/spf13/viper"
)

const tokenLifetime = 72 * time.Hour

func IssueToken(account models.Account) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  fmt.Sprint(account.ID),
		"name": account.Username,
		"iat":  time.Now().Unix(),
		"exp":  time.Now().Add(tokenLifetime).Unix(),
	})

	return token.SignedString([]byte(viper.GetString("security.jwt_secret")))
}

// ParseToken validates a bearer token and returns the account id it was
// issued for.
func ParseToken(raw string) (uint, error) {
	token, err := jwt.Parse(raw, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(viper.GetString("security.jwt_secret")), nil
	})
	if err != nil {
		return 0, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token claims")
	}

	sub, err := claims.GetSubject()
	if err != nil {
		return 0, err
	}

	var id uint
	if _, err := fmt.Sscan(sub, &id); err != nil {
		return 0, fmt.Errorf("malformed subject: %v", err)
	}

	return id, nil
}
