package cli

import (
	"context"
	"fmt"
	"strings"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunPlatforms выводит сводку приватности по всем платформам
func RunPlatforms(ctx context.Context, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	if _, err := requireSession(ctx, apiClient, sessions); err != nil {
		return err
	}

	resp, err := apiClient.Platforms(ctx)
	if err != nil {
		return err
	}

	fmt.Println("=== Privacy Dashboard ===")
	fmt.Println()

	for _, platform := range resp.Platforms {
		fmt.Printf("%s\n", strings.ToUpper(platform.ID))
		fmt.Printf("  Privacy score: %d/100\n", platform.PrivacyScore)
		if platform.Issues == 0 {
			fmt.Println("  Issues:        none")
		} else {
			fmt.Printf("  Issues:        %d\n", platform.Issues)
		}
		fmt.Println()
	}

	return nil
}
