package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/iudanet/privacyhub/internal/server/handlers"
	"github.com/iudanet/privacyhub/pkg/api"
)

// AuthMiddleware создает middleware для проверки bearer токена
// Отсутствие токена - 401, невалидный или истекший токен - 403
// При успехе identity кладется в контекст запроса
func AuthMiddleware(logger *slog.Logger, jwtConfig handlers.JWTConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Извлекаем токен из заголовка Authorization
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				logger.Warn("missing Authorization header", "path", r.URL.Path)
				writeError(w, "Authentication required", http.StatusUnauthorized)
				return
			}

			// Ожидаем формат: "Bearer <token>"
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
				logger.Warn("invalid Authorization header format", "path", r.URL.Path)
				writeError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			// Валидируем токен; истекший и невалидный дают одинаковый статус
			claims, err := handlers.ValidateToken(jwtConfig, parts[1])
			if err != nil {
				logger.Warn("token rejected", "error", err, "path", r.URL.Path)
				writeError(w, "Invalid or expired token", http.StatusForbidden)
				return
			}

			// Добавляем identity из токена в контекст
			ctx := context.WithValue(r.Context(), handlers.UserIDKey, claims.Subject)
			ctx = context.WithValue(ctx, handlers.EmailKey, claims.Email)

			logger.Debug("user authenticated", "user_id", claims.Subject)

			// Передаем запрос дальше с обновленным контекстом
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// writeError отправляет JSON ошибку в формате {message}
func writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.ErrorResponse{Message: message})
}
