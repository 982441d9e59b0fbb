package storage

import (
	"context"

	"github.com/iudanet/privacyhub/internal/models"
)

// SettingsStorage defines interface for per-platform privacy settings persistence
// Settings are stored as one JSON document per (user, platform) pair
type SettingsStorage interface {
	// GetSettings retrieves the settings document for a user/platform pair
	// Returns ErrSettingsNotFound when the user never saved this platform
	GetSettings(ctx context.Context, userID, platform string) (*models.PlatformSettings, error)

	// SaveSettings inserts or replaces the settings document (upsert)
	SaveSettings(ctx context.Context, settings *models.PlatformSettings) error
}
