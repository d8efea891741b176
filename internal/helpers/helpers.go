package helpers

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Mikheil23/FinalProject/internal/models"
	"github.com/go-chi/jwtauth/v5"
)

// GetCaller - извлекает личность вызывающего (sub + role) из контекста JWT токена
func GetCaller(ctx context.Context) (models.Caller, error) {
	token, claims, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return models.Caller{}, fmt.Errorf("undefined token: %w", err)
	}
	if token.Subject() == "" {
		return models.Caller{}, fmt.Errorf("undefined subject")
	}
	role, _ := claims["role"].(string)
	return models.Caller{ID: token.Subject(), Role: models.ParseRole(role)}, nil
}

// GetTokenID - идентификатор токена (jti), по нему хранится сессия
func GetTokenID(ctx context.Context) string {
	token, _, err := jwtauth.FromContext(ctx)
	if err != nil || token == nil {
		return ""
	}
	return token.JwtID()
}

// ParseID - разбор идентификатора из пути запроса
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q: %w", value, err)
	}
	return id, nil
}
