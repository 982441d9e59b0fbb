package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Режимы проверки утечек
const (
	BreachModeSimulated = "simulated"
	BreachModeLive      = "live"
)

// TokenTTL - фиксированное время жизни session токена (7 дней)
// Expiry абсолютный: refresh и ротации нет
const TokenTTL = 7 * 24 * time.Hour

// Config holds runtime configuration sourced from env vars
type Config struct {
	Port         string        // HTTP порт, по умолчанию 8080
	DatabasePath string        // путь к SQLite базе
	JWTSecret    string        // секрет подписи токенов, обязателен
	TokenTTL     time.Duration // время жизни токена
	BreachMode   string        // simulated | live
	HIBPAPIKey   string        // API ключ для живого HIBP (email проверки)
	LogLevel     slog.Level    // уровень логирования
}

// Load reads configuration from the environment and performs minimal validation
// Отсутствие JWT секрета - fatal misconfiguration: процесс не должен стартовать
func Load() (Config, error) {
	cfg := Config{
		Port:         fallback(os.Getenv("PRIVACYHUB_PORT"), "8080"),
		DatabasePath: fallback(os.Getenv("PRIVACYHUB_DATABASE_PATH"), "privacyhub.db"),
		JWTSecret:    strings.TrimSpace(os.Getenv("PRIVACYHUB_JWT_SECRET")),
		TokenTTL:     TokenTTL,
		BreachMode:   fallback(os.Getenv("PRIVACYHUB_BREACH_MODE"), BreachModeSimulated),
		HIBPAPIKey:   strings.TrimSpace(os.Getenv("PRIVACYHUB_HIBP_API_KEY")),
		LogLevel:     parseLogLevel(os.Getenv("PRIVACYHUB_LOG_LEVEL")),
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("PRIVACYHUB_JWT_SECRET is required")
	}

	if cfg.BreachMode != BreachModeSimulated && cfg.BreachMode != BreachModeLive {
		return Config{}, fmt.Errorf("invalid PRIVACYHUB_BREACH_MODE: %s", cfg.BreachMode)
	}

	return cfg, nil
}

// HTTPAddress returns the host:port pair for the HTTP server to bind to
func (c Config) HTTPAddress() string {
	return ":" + c.Port
}

func fallback(value, def string) string {
	if strings.TrimSpace(value) == "" {
		return def
	}
	return strings.TrimSpace(value)
}

func parseLogLevel(value string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
