package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/server/storage"
)

// GetSettings retrieves the privacy settings document for a user/platform pair
func (s *Storage) GetSettings(ctx context.Context, userID, platform string) (*models.PlatformSettings, error) {
	query := `
		SELECT user_id, platform, settings, updated_at
		FROM privacy_settings
		WHERE user_id = ? AND platform = ?
	`

	ps := &models.PlatformSettings{}
	var raw string

	err := s.db.QueryRowContext(ctx, query, userID, platform).Scan(
		&ps.UserID,
		&ps.Platform,
		&raw,
		&ps.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrSettingsNotFound
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	// Десериализуем JSON документ настроек
	if err := json.Unmarshal([]byte(raw), &ps.Settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal settings: %w", err)
	}

	return ps, nil
}

// SaveSettings inserts or replaces the settings document (upsert)
func (s *Storage) SaveSettings(ctx context.Context, settings *models.PlatformSettings) error {
	raw, err := json.Marshal(settings.Settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	query := `
		INSERT INTO privacy_settings (user_id, platform, settings, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (user_id, platform) DO UPDATE SET
			settings = excluded.settings,
			updated_at = excluded.updated_at
	`

	_, err = s.db.ExecContext(ctx, query,
		settings.UserID,
		settings.Platform,
		string(raw),
		settings.UpdatedAt,
	)

	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}
