package cli

import (
	"context"
	"fmt"
	"sort"
	"strings"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
	"github.com/iudanet/privacyhub/internal/models"
)

// RunSettings показывает или обновляет настройки платформы
// Без пар key=value - показ, с ними - обновление всего документа
func RunSettings(ctx context.Context, args []string, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: privacyhub settings <platform> [key=value ...]")
	}

	if _, err := requireSession(ctx, apiClient, sessions); err != nil {
		return err
	}

	platform := args[0]

	if len(args) == 1 {
		resp, err := apiClient.GetSettings(ctx, platform)
		if err != nil {
			return err
		}
		printSettings(resp.Platform, resp.Settings)
		return nil
	}

	// Обновление: стартуем с текущего документа, накладываем переданные пары
	// PUT заменяет документ целиком, поэтому неизмененные контролы нужно сохранить
	current, err := apiClient.GetSettings(ctx, platform)
	if err != nil {
		return err
	}

	updated := make(models.PrivacySettings, len(current.Settings))
	for key, value := range current.Settings {
		updated[key] = value
	}

	for _, pair := range args[1:] {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" || value == "" {
			return fmt.Errorf("invalid setting %q, expected key=value", pair)
		}
		updated[key] = value
	}

	resp, err := apiClient.SaveSettings(ctx, platform, updated)
	if err != nil {
		return err
	}

	fmt.Println(resp.Message)
	fmt.Println()
	printSettings(resp.Platform, resp.Settings)

	return nil
}

func printSettings(platform string, settings models.PrivacySettings) {
	fmt.Printf("=== %s settings ===\n", platform)

	keys := make([]string, 0, len(settings))
	for key := range settings {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Printf("  %-20s %s\n", key, settings[key])
	}
}
