package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunProfile запрашивает и выводит профиль с сервера
func RunProfile(ctx context.Context, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	if _, err := requireSession(ctx, apiClient, sessions); err != nil {
		return err
	}

	profile, err := apiClient.Profile(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== Profile ===")
	fmt.Printf("ID:    %s\n", profile.ID)
	fmt.Printf("Name:  %s\n", profile.Name)
	fmt.Printf("Email: %s\n", profile.Email)
	fmt.Printf("Role:  %s\n", profile.Role)

	return nil
}
