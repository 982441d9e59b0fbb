package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/privacyhub/internal/server/storage"
)

// ProfileHandler обрабатывает запросы профиля пользователя
type ProfileHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewProfileHandler создает новый handler профиля
func NewProfileHandler(logger *slog.Logger, users storage.UserStorage) *ProfileHandler {
	return &ProfileHandler{
		logger: logger,
		users:  users,
	}
}

// Profile обрабатывает GET /api/user/profile
// Identity берется из контекста (auth middleware)
// Токен может пережить удаление аккаунта, тогда 404
func (h *ProfileHandler) Profile(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	userID, ok := GetUserID(ctx)
	if !ok {
		sendError(h.logger, w, "Authentication required", http.StatusUnauthorized)
		return
	}

	user, err := h.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "profile request for missing user", slog.String("user_id", userID))
			sendError(h.logger, w, "User not found", http.StatusNotFound)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "Server error", http.StatusInternalServerError)
		return
	}

	sendJSON(h.logger, w, user.Public(), http.StatusOK)
}
