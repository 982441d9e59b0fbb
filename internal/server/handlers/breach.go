package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/iudanet/privacyhub/internal/hibp"
	"github.com/iudanet/privacyhub/internal/validation"
	"github.com/iudanet/privacyhub/pkg/api"
)

// BreachHandler обрабатывает проверки email/пароля по базам утечек
type BreachHandler struct {
	logger  *slog.Logger
	checker hibp.Checker
}

// NewBreachHandler создает новый handler проверки утечек
func NewBreachHandler(logger *slog.Logger, checker hibp.Checker) *BreachHandler {
	return &BreachHandler{
		logger:  logger,
		checker: checker,
	}
}

// CheckEmail обрабатывает POST /api/breach/email
func (h *BreachHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.EmailBreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	result, err := h.checker.CheckEmail(ctx, email)
	if err != nil {
		if errors.Is(err, hibp.ErrRateLimited) {
			sendError(h.logger, w, "Rate limited. Please try again later.", http.StatusServiceUnavailable)
			return
		}
		h.logger.ErrorContext(ctx, "email breach check failed", slog.Any("error", err))
		sendError(h.logger, w, "Failed to check email. Please try again.", http.StatusBadGateway)
		return
	}

	resp := api.EmailBreachResponse{
		Email:      result.Email,
		IsBreached: result.IsBreached,
		Breaches:   result.Breaches,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}

// CheckPassword обрабатывает POST /api/breach/password
// Пароль не логируется и не сохраняется; живой режим использует
// k-anonymity (наружу уходит только SHA-1 префикс)
func (h *BreachHandler) CheckPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.PasswordBreachRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Password == "" {
		sendError(h.logger, w, "password is required", http.StatusBadRequest)
		return
	}

	result, err := h.checker.CheckPassword(ctx, req.Password)
	if err != nil {
		if errors.Is(err, hibp.ErrRateLimited) {
			sendError(h.logger, w, "Rate limited. Please try again later.", http.StatusServiceUnavailable)
			return
		}
		h.logger.ErrorContext(ctx, "password breach check failed", slog.Any("error", err))
		sendError(h.logger, w, "Failed to check password. Please try again.", http.StatusBadGateway)
		return
	}

	resp := api.PasswordBreachResponse{
		IsBreached: result.IsBreached,
		Count:      result.Count,
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
