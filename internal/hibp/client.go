package hibp

import (
	"context"
	"crypto/sha1"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/privacyhub/internal/models"
)

const (
	defaultBaseURL     = "https://haveibeenpwned.com/api/v3"
	defaultPasswordURL = "https://api.pwnedpasswords.com"

	// userAgent обязателен для HIBP API
	userAgent = "Social Privacy Hub"
)

// Client представляет HTTP клиент для живого HIBP API
type Client struct {
	httpClient  *http.Client
	baseURL     string
	passwordURL string
	apiKey      string
}

// Option настраивает Client
type Option func(*Client)

// WithBaseURLs переопределяет адреса API (используется в тестах)
func WithBaseURLs(baseURL, passwordURL string) Option {
	return func(c *Client) {
		c.baseURL = baseURL
		c.passwordURL = passwordURL
	}
}

// NewClient создает клиент живого HIBP API
// apiKey требуется для проверки email; range API паролей работает без ключа
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		baseURL:     defaultBaseURL,
		passwordURL: defaultPasswordURL,
		apiKey:      apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// CheckEmail проверяет email через /breachedaccount
// 404 означает, что утечек не найдено
func (c *Client) CheckEmail(ctx context.Context, email string) (*models.EmailBreachResult, error) {
	reqURL := fmt.Sprintf("%s/breachedaccount/%s?truncateResponse=false",
		c.baseURL, url.PathEscape(email))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	if c.apiKey != "" {
		req.Header.Set("hibp-api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("breach request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	switch resp.StatusCode {
	case http.StatusNotFound:
		// Утечек не найдено
		return &models.EmailBreachResult{Email: email, Breaches: []models.Breach{}}, nil
	case http.StatusTooManyRequests:
		return nil, ErrRateLimited
	case http.StatusOK:
		// continue below
	default:
		return nil, fmt.Errorf("unexpected breach API status: %d", resp.StatusCode)
	}

	var breaches []models.Breach
	if err := json.NewDecoder(resp.Body).Decode(&breaches); err != nil {
		return nil, fmt.Errorf("failed to decode breach response: %w", err)
	}

	return &models.EmailBreachResult{
		Email:      email,
		IsBreached: len(breaches) > 0,
		Breaches:   breaches,
	}, nil
}

// CheckPassword проверяет пароль через k-anonymity range API
// Наружу уходит только SHA-1 префикс (5 символов), сам пароль не покидает процесс
func (c *Client) CheckPassword(ctx context.Context, password string) (*models.PasswordBreachResult, error) {
	sum := sha1.Sum([]byte(password))
	hash := strings.ToUpper(fmt.Sprintf("%x", sum))
	prefix, suffix := hash[:5], hash[5:]

	reqURL := fmt.Sprintf("%s/range/%s", c.passwordURL, prefix)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("range request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, ErrRateLimited
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected range API status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read range response: %w", err)
	}

	// Ответ - строки вида "SUFFIX:COUNT", ищем хвост нашего хеша
	for _, line := range strings.Split(string(body), "\n") {
		entry := strings.TrimSpace(line)
		candidate, countStr, ok := strings.Cut(entry, ":")
		if !ok {
			continue
		}
		if candidate != suffix {
			continue
		}

		count, err := strconv.ParseInt(countStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("failed to parse breach count: %w", err)
		}
		return &models.PasswordBreachResult{IsBreached: count > 0, Count: count}, nil
	}

	return &models.PasswordBreachResult{}, nil
}
