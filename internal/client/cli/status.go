package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunStatus показывает состояние локальной сессии
func RunStatus(ctx context.Context, sessions storage.SessionStorage) error {
	session, err := sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			fmt.Println("Status: not authenticated")
			return nil
		}
		return fmt.Errorf("failed to get session: %w", err)
	}

	expiresAt := time.Unix(session.ExpiresAt, 0)
	if time.Now().Unix() >= session.ExpiresAt {
		fmt.Println("Status: session expired")
		fmt.Printf("Email:   %s\n", session.Email)
		fmt.Printf("Expired: %s\n", expiresAt.Format(time.RFC3339))
		fmt.Println()
		fmt.Println("Please run 'privacyhub login' again.")
		return nil
	}

	fmt.Println("Status: authenticated")
	fmt.Printf("Email:   %s\n", session.Email)
	fmt.Printf("Role:    %s\n", session.Role)
	fmt.Printf("Expires: %s\n", expiresAt.Format(time.RFC3339))

	return nil
}
