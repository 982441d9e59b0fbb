package storage

import "context"

// SessionStorage defines interface for storing the session on client side
// Токен хранится как есть: сервер stateless, отозвать его нельзя,
// logout сводится к удалению локальной записи
type SessionStorage interface {
	// SaveSession stores session data, replacing any previous session
	SaveSession(ctx context.Context, session *SessionData) error

	// GetSession retrieves stored session data
	// Returns ErrSessionNotFound if no session exists
	GetSession(ctx context.Context) (*SessionData, error)

	// DeleteSession removes stored session data (logout)
	DeleteSession(ctx context.Context) error

	// IsAuthenticated checks if a non-expired session exists
	IsAuthenticated(ctx context.Context) (bool, error)
}

// SessionData represents the locally stored session
type SessionData struct {
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Token     string `json:"token"`      // подписанный JWT
	ExpiresAt int64  `json:"expires_at"` // unix секунды, совпадает с exp токена
}
