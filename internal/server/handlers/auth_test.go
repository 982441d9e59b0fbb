package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/server/storage"
	"github.com/iudanet/privacyhub/pkg/api"
)

// mockUserStorage is a map-backed implementation of UserStorage for testing
type mockUserStorage struct {
	mu          sync.Mutex
	users       map[string]*models.User // email -> User
	createError error
	getError    error
}

func newMockUserStorage() *mockUserStorage {
	return &mockUserStorage{users: make(map[string]*models.User)}
}

func (m *mockUserStorage) CreateUser(ctx context.Context, user *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.createError != nil {
		return m.createError
	}
	if _, exists := m.users[user.Email]; exists {
		return storage.ErrUserAlreadyExists
	}
	m.users[user.Email] = user
	return nil
}

func (m *mockUserStorage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getError != nil {
		return nil, m.getError
	}
	user, ok := m.users[email]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	return user, nil
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.getError != nil {
		return nil, m.getError
	}
	for _, user := range m.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, storage.ErrUserNotFound
}

func testJWTConfig() JWTConfig {
	return JWTConfig{
		Secret:   []byte("test-secret-key"),
		TokenTTL: 7 * 24 * time.Hour,
	}
}

func newTestAuthHandler(users *mockUserStorage) *AuthHandler {
	return NewAuthHandler(testLogger(), users, testJWTConfig())
}

func doRegister(t *testing.T, h *AuthHandler, body api.RegisterRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	h.Register(w, req)
	return w
}

func doLogin(t *testing.T, h *AuthHandler, body api.LoginRequest) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(payload))
	w := httptest.NewRecorder()
	h.Login(w, req)
	return w
}

func TestAuthHandler_Register_Success(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	w := doRegister(t, h, api.RegisterRequest{
		Name:     "Ann",
		Email:    "ann@x.com",
		Password: "Password1",
	})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.User.ID)
	assert.Equal(t, "Ann", resp.User.Name)
	assert.Equal(t, "ann@x.com", resp.User.Email)
	assert.Equal(t, models.RoleStandard, resp.User.Role)
	assert.Equal(t, "User registered successfully", resp.Message)

	// Digest никогда не попадает в ответ
	body := w.Body.String()
	assert.NotContains(t, body, "digest")
	assert.NotContains(t, body, "Password1")
	assert.NotContains(t, body, "$2a$")
}

func TestAuthHandler_Register_NormalizesEmail(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	w := doRegister(t, h, api.RegisterRequest{
		Name:     "Ann",
		Email:    "Ann@X.com",
		Password: "Password1",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	// Хранится нормализованный email
	stored, err := users.GetUserByEmail(context.Background(), "ann@x.com")
	require.NoError(t, err)
	assert.Equal(t, "ann@x.com", stored.Email)

	// Логин с другим регистром проходит
	lw := doLogin(t, h, api.LoginRequest{Email: "ANN@x.com", Password: "Password1"})
	assert.Equal(t, http.StatusOK, lw.Code)
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	first := doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "Password1"})
	require.Equal(t, http.StatusCreated, first.Code)

	second := doRegister(t, h, api.RegisterRequest{Name: "Ann Again", Email: "ann@x.com", Password: "Password2"})
	require.Equal(t, http.StatusBadRequest, second.Code)

	var resp api.ErrorResponse
	require.NoError(t, json.Unmarshal(second.Body.Bytes(), &resp))
	assert.Equal(t, "User with this email already exists", resp.Message)
}

func TestAuthHandler_Register_PasswordBoundary(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	// 7 символов - отклоняется
	w := doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "short@x.com", Password: "1234567"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// 8 символов - принимается
	w = doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "exact@x.com", Password: "12345678"})
	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAuthHandler_Register_Validation(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	tests := []struct {
		name string
		req  api.RegisterRequest
	}{
		{"empty name", api.RegisterRequest{Email: "a@x.com", Password: "Password1"}},
		{"bad email", api.RegisterRequest{Name: "Ann", Email: "not-an-email", Password: "Password1"}},
		{"empty password", api.RegisterRequest{Name: "Ann", Email: "a@x.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doRegister(t, h, tt.req)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestAuthHandler_Register_InvalidBody(t *testing.T) {
	h := newTestAuthHandler(newMockUserStorage())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	h.Register(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Login_Success(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "Password1"})

	w := doLogin(t, h, api.LoginRequest{Email: "ann@x.com", Password: "Password1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ann@x.com", resp.User.Email)
	assert.Equal(t, "Login successful", resp.Message)
}

func TestAuthHandler_Login_IndistinguishableFailures(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "Password1"})

	// Неверный пароль и несуществующий email дают идентичный ответ
	wrongPassword := doLogin(t, h, api.LoginRequest{Email: "ann@x.com", Password: "WrongPass1"})
	unknownEmail := doLogin(t, h, api.LoginRequest{Email: "ghost@x.com", Password: "Password1"})

	assert.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, http.StatusUnauthorized, unknownEmail.Code)
	assert.JSONEq(t, wrongPassword.Body.String(), unknownEmail.Body.String())
}

func TestAuthHandler_Login_StoreUnavailable(t *testing.T) {
	users := newMockUserStorage()
	users.getError = context.DeadlineExceeded
	h := newTestAuthHandler(users)

	w := doLogin(t, h, api.LoginRequest{Email: "ann@x.com", Password: "Password1"})
	require.Equal(t, http.StatusInternalServerError, w.Code)

	// Внутренние детали не уходят через границу
	assert.NotContains(t, w.Body.String(), "deadline")
}

func TestAuthHandler_TokenRoundTrip(t *testing.T) {
	users := newMockUserStorage()
	h := newTestAuthHandler(users)

	w := doRegister(t, h, api.RegisterRequest{Name: "Ann", Email: "ann@x.com", Password: "Password1"})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp api.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	// Токен сразу валиден и указывает на того же пользователя
	claims, err := ValidateToken(testJWTConfig(), resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.Subject)
	assert.Equal(t, "ann@x.com", claims.Email)
}
