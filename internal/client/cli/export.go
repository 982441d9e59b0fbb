package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunExport скачивает документ настроек платформы в JSON файл
// Имя файла: <platform>-privacy-data-<date>.json
func RunExport(ctx context.Context, args []string, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: privacyhub export <platform>")
	}

	if _, err := requireSession(ctx, apiClient, sessions); err != nil {
		return err
	}

	platform := args[0]

	doc, err := apiClient.Export(ctx, platform)
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode export document: %w", err)
	}

	filename := fmt.Sprintf("%s-privacy-data-%s.json", platform, time.Now().Format("2006-01-02"))
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write export file: %w", err)
	}

	fmt.Printf("Exported %s settings to %s\n", platform, filename)
	return nil
}
