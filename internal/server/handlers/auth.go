package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/privacyhub/internal/crypto"
	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/server/storage"
	"github.com/iudanet/privacyhub/internal/validation"
	"github.com/iudanet/privacyhub/pkg/api"
)

// AuthHandler обрабатывает запросы регистрации и аутентификации
type AuthHandler struct {
	logger    *slog.Logger
	users     storage.UserStorage
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Register обрабатывает POST /api/auth/register
// Регистрация нового пользователя
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация входных данных до каких-либо side effects
	if err := validation.ValidateName(req.Name); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if err := validation.ValidateEmail(email); err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль явно, а не через hook на слое данных
	// Короткий пароль отклоняется до хеширования
	digest, err := crypto.HashPassword(req.Password)
	if err != nil {
		sendError(h.logger, w, err.Error(), http.StatusBadRequest)
		return
	}

	user := &models.User{
		ID:             uuid.New().String(),
		Name:           strings.TrimSpace(req.Name),
		Email:          email,
		PasswordDigest: digest,
		Role:           models.RoleStandard,
		CreatedAt:      time.Now().UTC(),
	}

	// Уникальность email обеспечивается атомарно на уровне store:
	// при гонке двух регистраций вторая получает ErrUserAlreadyExists
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "registration rejected: email taken", slog.String("email", email))
			sendError(h.logger, w, "User with this email already exists", http.StatusBadRequest)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "Server error during registration", http.StatusInternalServerError)
		return
	}

	token, err := GenerateToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(h.logger, w, "Server error during registration", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	resp := api.AuthResponse{
		Token:   token,
		User:    user.Public(),
		Message: "User registered successfully",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/auth/login
// Неизвестный email и неверный пароль дают одинаковый ответ,
// чтобы не раскрывать существование аккаунта
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest)
		return
	}

	email := validation.NormalizeEmail(req.Email)
	if email == "" || req.Password == "" {
		sendError(h.logger, w, "email and password are required", http.StatusBadRequest)
		return
	}

	user, err := h.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", email))
			sendError(h.logger, w, "Invalid email or password", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "Server error during login", http.StatusInternalServerError)
		return
	}

	if err := crypto.VerifyPassword(req.Password, user.PasswordDigest); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", email))
		sendError(h.logger, w, "Invalid email or password", http.StatusUnauthorized)
		return
	}

	token, err := GenerateToken(h.jwtConfig, user.ID, user.Email)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(h.logger, w, "Server error during login", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("user_id", user.ID),
		slog.String("email", user.Email))

	resp := api.AuthResponse{
		Token:   token,
		User:    user.Public(),
		Message: "Login successful",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
