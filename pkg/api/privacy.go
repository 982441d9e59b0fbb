package api

import "github.com/iudanet/privacyhub/internal/models"

// PlatformsResponse представляет сводку по всем платформам для дашборда
type PlatformsResponse struct {
	Platforms []models.PlatformReport `json:"platforms"`
}

// SettingsResponse представляет документ настроек одной платформы
type SettingsResponse struct {
	Platform string                 `json:"platform"`
	Settings models.PrivacySettings `json:"settings"`
	Message  string                 `json:"message,omitempty"`
}

// SaveSettingsRequest представляет запрос на сохранение настроек платформы
type SaveSettingsRequest struct {
	Settings models.PrivacySettings `json:"settings"`
}
