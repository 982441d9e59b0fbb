package api

import "github.com/iudanet/privacyhub/internal/models"

// RegisterRequest представляет запрос на регистрацию нового пользователя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // email (нормализуется сервером)
	Password string `json:"password"` // plaintext пароль, минимум 8 символов
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse представляет ответ register/login с bearer токеном
type AuthResponse struct {
	Token   string            `json:"token"`   // подписанный JWT, TTL 7 дней
	User    models.PublicUser `json:"user"`    // публичное представление (digest исключен)
	Message string            `json:"message"` // человекочитаемое сообщение
}

// ErrorResponse представляет ответ с ошибкой
// Message - стабильное поле, никаких внутренних деталей через границу не уходит
type ErrorResponse struct {
	Message string `json:"message"`
}
