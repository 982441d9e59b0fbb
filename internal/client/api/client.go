package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/pkg/api"
)

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

// NewClient создает новый API клиент
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовок Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}
}

// SetToken устанавливает bearer токен для последующих запросов
func (c *Client) SetToken(token string) {
	c.token = token
}

// Register регистрирует нового пользователя
func (c *Client) Register(ctx context.Context, req api.RegisterRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/register", req, &resp); err != nil {
		return nil, fmt.Errorf("register request failed: %w", err)
	}
	return &resp, nil
}

// Login выполняет аутентификацию пользователя
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.AuthResponse, error) {
	var resp api.AuthResponse
	if err := c.doRequest(ctx, http.MethodPost, "/api/auth/login", req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Profile возвращает профиль аутентифицированного пользователя
func (c *Client) Profile(ctx context.Context) (*models.PublicUser, error) {
	var resp models.PublicUser
	if err := c.doRequest(ctx, http.MethodGet, "/api/user/profile", nil, &resp); err != nil {
		return nil, fmt.Errorf("profile request failed: %w", err)
	}
	return &resp, nil
}

// Platforms возвращает сводку приватности по всем платформам
func (c *Client) Platforms(ctx context.Context) (*api.PlatformsResponse, error) {
	var resp api.PlatformsResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/privacy/platforms", nil, &resp); err != nil {
		return nil, fmt.Errorf("platforms request failed: %w", err)
	}
	return &resp, nil
}

// GetSettings возвращает настройки приватности платформы
func (c *Client) GetSettings(ctx context.Context, platform string) (*api.SettingsResponse, error) {
	var resp api.SettingsResponse
	url := fmt.Sprintf("/api/privacy/platforms/%s/settings", platform)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("get settings request failed: %w", err)
	}
	return &resp, nil
}

// SaveSettings сохраняет настройки приватности платформы целиком
func (c *Client) SaveSettings(ctx context.Context, platform string, settings models.PrivacySettings) (*api.SettingsResponse, error) {
	var resp api.SettingsResponse
	url := fmt.Sprintf("/api/privacy/platforms/%s/settings", platform)
	req := api.SaveSettingsRequest{Settings: settings}
	if err := c.doRequest(ctx, http.MethodPut, url, req, &resp); err != nil {
		return nil, fmt.Errorf("save settings request failed: %w", err)
	}
	return &resp, nil
}

// Export возвращает документ для скачивания настроек платформы
func (c *Client) Export(ctx context.Context, platform string) (*models.ExportDocument, error) {
	var resp models.ExportDocument
	url := fmt.Sprintf("/api/privacy/platforms/%s/export", platform)
	if err := c.doRequest(ctx, http.MethodGet, url, nil, &resp); err != nil {
		return nil, fmt.Errorf("export request failed: %w", err)
	}
	return &resp, nil
}

// CheckEmail проверяет email по базам известных утечек
func (c *Client) CheckEmail(ctx context.Context, email string) (*api.EmailBreachResponse, error) {
	var resp api.EmailBreachResponse
	req := api.EmailBreachRequest{Email: email}
	if err := c.doRequest(ctx, http.MethodPost, "/api/breach/email", req, &resp); err != nil {
		return nil, fmt.Errorf("email breach check failed: %w", err)
	}
	return &resp, nil
}

// CheckPassword проверяет пароль по базам утечек
// Пароль уходит только на наш сервер, дальше работает k-anonymity
func (c *Client) CheckPassword(ctx context.Context, password string) (*api.PasswordBreachResponse, error) {
	var resp api.PasswordBreachResponse
	req := api.PasswordBreachRequest{Password: password}
	if err := c.doRequest(ctx, http.MethodPost, "/api/breach/password", req, &resp); err != nil {
		return nil, fmt.Errorf("password breach check failed: %w", err)
	}
	return &resp, nil
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result interface{}) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	// Проверяем статус код
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Message != "" {
			return fmt.Errorf("server error (%d): %s", resp.StatusCode, errResp.Message)
		}
		return fmt.Errorf("request failed with status %d: %s", resp.StatusCode, string(respBody))
	}

	// Декодируем успешный ответ
	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
