package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunLogout удаляет локальную сессию
// Токен на сервере не отзывается (stateless), он просто истечет сам
func RunLogout(ctx context.Context, sessions storage.SessionStorage) error {
	if err := sessions.DeleteSession(ctx); err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Not logged in.")
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}

	fmt.Println("Logged out.")
	return nil
}
