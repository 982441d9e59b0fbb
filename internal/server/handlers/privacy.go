package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/privacy"
	"github.com/iudanet/privacyhub/internal/server/storage"
	"github.com/iudanet/privacyhub/pkg/api"
)

// PrivacyHandler обрабатывает запросы дашборда приватности
type PrivacyHandler struct {
	logger   *slog.Logger
	settings storage.SettingsStorage
}

// NewPrivacyHandler создает новый handler дашборда
func NewPrivacyHandler(logger *slog.Logger, settings storage.SettingsStorage) *PrivacyHandler {
	return &PrivacyHandler{
		logger:   logger,
		settings: settings,
	}
}

// Platforms обрабатывает GET /api/privacy/platforms
// Возвращает сводку (score, issues) по каждой подключенной платформе,
// посчитанную из сохраненных настроек пользователя
func (h *PrivacyHandler) Platforms(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Authentication required", http.StatusUnauthorized)
		return
	}

	reports := make([]models.PlatformReport, 0, len(privacy.Platforms()))
	for _, platform := range privacy.Platforms() {
		settings, err := h.userSettings(r, userID, platform)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to load settings", slog.Any("error", err))
			sendError(h.logger, w, "Server error", http.StatusInternalServerError)
			return
		}

		report, err := privacy.BuildReport(platform, settings)
		if err != nil {
			h.logger.ErrorContext(ctx, "failed to build report", slog.Any("error", err))
			sendError(h.logger, w, "Server error", http.StatusInternalServerError)
			return
		}
		reports = append(reports, report)
	}

	sendJSON(h.logger, w, api.PlatformsResponse{Platforms: reports}, http.StatusOK)
}

// GetSettings обрабатывает GET /api/privacy/platforms/{platform}/settings
func (h *PrivacyHandler) GetSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, platform, ok := h.requireUserAndPlatform(w, r)
	if !ok {
		return
	}

	settings, err := h.userSettings(r, userID, platform)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load settings", slog.Any("error", err))
		sendError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, api.SettingsResponse{Platform: platform, Settings: settings}, http.StatusOK)
}

// SaveSettings обрабатывает PUT /api/privacy/platforms/{platform}/settings
// Документ сохраняется целиком (upsert), неизвестные контролы отклоняются
func (h *PrivacyHandler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, platform, ok := h.requireUserAndPlatform(w, r)
	if !ok {
		return
	}

	var req api.SaveSettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}
	if len(req.Settings) == 0 {
		sendError(h.logger, w, "settings are required", http.StatusBadRequest)
		return
	}

	if err := privacy.ValidateSettings(platform, req.Settings); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	ps := &models.PlatformSettings{
		UserID:    userID,
		Platform:  platform,
		Settings:  req.Settings,
		UpdatedAt: time.Now().UTC(),
	}

	if err := h.settings.SaveSettings(ctx, ps); err != nil {
		h.logger.ErrorContext(ctx, "failed to save settings", slog.Any("error", err))
		sendError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "privacy settings saved",
		slog.String("user_id", userID),
		slog.String("platform", platform))

	resp := api.SettingsResponse{
		Platform: platform,
		Settings: req.Settings,
		Message:  platform + " privacy settings saved successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// Export обрабатывает GET /api/privacy/platforms/{platform}/export
// Возвращает JSON документ для скачивания настроек платформы
func (h *PrivacyHandler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, platform, ok := h.requireUserAndPlatform(w, r)
	if !ok {
		return
	}

	settings, err := h.userSettings(r, userID, platform)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to load settings", slog.Any("error", err))
		sendError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	doc := privacy.BuildExport(platform, settings, time.Now())
	sendJSON(h.logger, w, doc, http.StatusOK)
}

// requireUserAndPlatform извлекает identity из контекста и платформу из пути
func (h *PrivacyHandler) requireUserAndPlatform(w http.ResponseWriter, r *http.Request) (userID, platform string, ok bool) {
	userID, authed := GetUserID(r.Context())
	if !authed {
		sendError(h.logger, w, "Authentication required", http.StatusUnauthorized)
		return "", "", false
	}

	platform = r.PathValue("platform")
	if !privacy.IsKnownPlatform(platform) {
		sendError(h.logger, w, "Unknown platform", http.StatusNotFound)
		return "", "", false
	}

	return userID, platform, true
}

// userSettings возвращает сохраненный документ настроек пользователя,
// либо дефолты платформы, если пользователь еще ничего не сохранял
func (h *PrivacyHandler) userSettings(r *http.Request, userID, platform string) (models.PrivacySettings, error) {
	stored, err := h.settings.GetSettings(r.Context(), userID, platform)
	if err != nil {
		if errors.Is(err, storage.ErrSettingsNotFound) {
			return privacy.DefaultSettings(platform)
		}
		return nil, err
	}
	return stored.Settings, nil
}
