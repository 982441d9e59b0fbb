package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/privacyhub/internal/client/storage"
	"github.com/iudanet/privacyhub/pkg/api"
)

// sessionFromAuth строит локальную сессию из ответа register/login
// Expiry берется из exp claim токена; подпись не проверяется,
// серверный секрет клиенту недоступен
func sessionFromAuth(resp *api.AuthResponse) (*storage.SessionData, error) {
	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(resp.Token, &claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	expiresAt := time.Now().Add(7 * 24 * time.Hour).Unix()
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Unix()
	}

	return &storage.SessionData{
		UserID:    resp.User.ID,
		Name:      resp.User.Name,
		Email:     resp.User.Email,
		Role:      resp.User.Role,
		Token:     resp.Token,
		ExpiresAt: expiresAt,
	}, nil
}
