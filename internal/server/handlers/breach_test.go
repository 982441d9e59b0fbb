package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/privacyhub/internal/hibp"
	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/pkg/api"
)

// stubChecker позволяет подменить ответы breach API в тестах
type stubChecker struct {
	emailResult    *models.EmailBreachResult
	passwordResult *models.PasswordBreachResult
	err            error
}

func (s *stubChecker) CheckEmail(ctx context.Context, email string) (*models.EmailBreachResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.emailResult, nil
}

func (s *stubChecker) CheckPassword(ctx context.Context, password string) (*models.PasswordBreachResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.passwordResult, nil
}

func doBreachRequest(t *testing.T, handler func(http.ResponseWriter, *http.Request), target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(payload))
	w := httptest.NewRecorder()
	handler(w, req)
	return w
}

func TestBreachHandler_CheckEmail_Breached(t *testing.T) {
	checker := &stubChecker{
		emailResult: &models.EmailBreachResult{
			Email:      "ann@x.com",
			IsBreached: true,
			Breaches: []models.Breach{
				{Name: "ExampleBreach", Title: "Example Breach", Domain: "example.com"},
			},
		},
	}
	h := NewBreachHandler(testLogger(), checker)

	w := doBreachRequest(t, h.CheckEmail, "/api/breach/email", api.EmailBreachRequest{Email: "ann@x.com"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.EmailBreachResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ann@x.com", resp.Email)
	assert.True(t, resp.IsBreached)
	require.Len(t, resp.Breaches, 1)
	assert.Equal(t, "Example Breach", resp.Breaches[0].Title)
}

func TestBreachHandler_CheckEmail_InvalidEmail(t *testing.T) {
	h := NewBreachHandler(testLogger(), &stubChecker{})

	w := doBreachRequest(t, h.CheckEmail, "/api/breach/email", api.EmailBreachRequest{Email: "not-an-email"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBreachHandler_CheckEmail_RateLimited(t *testing.T) {
	h := NewBreachHandler(testLogger(), &stubChecker{err: hibp.ErrRateLimited})

	w := doBreachRequest(t, h.CheckEmail, "/api/breach/email", api.EmailBreachRequest{Email: "ann@x.com"})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "Rate limited")
}

func TestBreachHandler_CheckEmail_UpstreamError(t *testing.T) {
	h := NewBreachHandler(testLogger(), &stubChecker{err: errors.New("connection refused")})

	w := doBreachRequest(t, h.CheckEmail, "/api/breach/email", api.EmailBreachRequest{Email: "ann@x.com"})
	require.Equal(t, http.StatusBadGateway, w.Code)

	// Детали upstream ошибки не уходят клиенту
	assert.NotContains(t, w.Body.String(), "connection refused")
}

func TestBreachHandler_CheckPassword_Breached(t *testing.T) {
	checker := &stubChecker{
		passwordResult: &models.PasswordBreachResult{IsBreached: true, Count: 42},
	}
	h := NewBreachHandler(testLogger(), checker)

	w := doBreachRequest(t, h.CheckPassword, "/api/breach/password", api.PasswordBreachRequest{Password: "Password1"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp api.PasswordBreachResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.IsBreached)
	assert.Equal(t, int64(42), resp.Count)
}

func TestBreachHandler_CheckPassword_Empty(t *testing.T) {
	h := NewBreachHandler(testLogger(), &stubChecker{})

	w := doBreachRequest(t, h.CheckPassword, "/api/breach/password", api.PasswordBreachRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBreachHandler_CheckPassword_RateLimited(t *testing.T) {
	h := NewBreachHandler(testLogger(), &stubChecker{err: hibp.ErrRateLimited})

	w := doBreachRequest(t, h.CheckPassword, "/api/breach/password", api.PasswordBreachRequest{Password: "Password1"})
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
}
