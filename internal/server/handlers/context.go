package handlers

import "context"

// contextKey - приватный тип для ключей контекста
type contextKey string

const (
	// UserIDKey - ключ контекста с UUID аутентифицированного пользователя
	UserIDKey contextKey = "user_id"
	// EmailKey - ключ контекста с email аутентифицированного пользователя
	EmailKey contextKey = "email"
)

// GetUserID извлекает ID пользователя из контекста запроса
func GetUserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(UserIDKey).(string)
	return id, ok
}

// GetEmail извлекает email пользователя из контекста запроса
func GetEmail(ctx context.Context) (string, bool) {
	email, ok := ctx.Value(EmailKey).(string)
	return email, ok
}
