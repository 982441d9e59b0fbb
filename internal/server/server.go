package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/iudanet/privacyhub/internal/hibp"
	"github.com/iudanet/privacyhub/internal/server/config"
	"github.com/iudanet/privacyhub/internal/server/handlers"
	"github.com/iudanet/privacyhub/internal/server/middleware"
	"github.com/iudanet/privacyhub/internal/server/storage"
)

// Лимиты частоты запросов
// Auth эндпоинты - мишень для перебора, breach эндпоинты дергают внешний API
const (
	authRateLimit     = 10
	breachRateLimit   = 20
	rateLimitWindow   = time.Minute
	readHeaderTimeout = 5 * time.Second
	readTimeout       = 10 * time.Second
	writeTimeout      = 30 * time.Second
	idleTimeout       = 120 * time.Second
)

// Server wraps an http.Server with configured routes
type Server struct {
	inner *http.Server
}

// NewRouter собирает таблицу маршрутов и общие middleware
// Вынесен отдельно от Server, чтобы тесты могли поднять handler без сокета
func NewRouter(
	logger *slog.Logger,
	cfg config.Config,
	users storage.UserStorage,
	settings storage.SettingsStorage,
	checker hibp.Checker,
	pinger handlers.Pinger,
	version string,
) http.Handler {
	jwtConfig := handlers.JWTConfig{
		Secret:   []byte(cfg.JWTSecret),
		TokenTTL: cfg.TokenTTL,
	}

	authHandler := handlers.NewAuthHandler(logger, users, jwtConfig)
	profileHandler := handlers.NewProfileHandler(logger, users)
	privacyHandler := handlers.NewPrivacyHandler(logger, settings)
	breachHandler := handlers.NewBreachHandler(logger, checker)
	healthHandler := handlers.NewHealthHandler(logger, pinger, version)

	authed := middleware.AuthMiddleware(logger, jwtConfig)
	authLimit := middleware.RateLimitMiddleware(authRateLimit, rateLimitWindow, logger)
	breachLimit := middleware.RateLimitMiddleware(breachRateLimit, rateLimitWindow, logger)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", healthHandler.Health)

	mux.Handle("POST /api/auth/register", authLimit(http.HandlerFunc(authHandler.Register)))
	mux.Handle("POST /api/auth/login", authLimit(http.HandlerFunc(authHandler.Login)))

	mux.Handle("GET /api/user/profile", authed(http.HandlerFunc(profileHandler.Profile)))

	mux.Handle("GET /api/privacy/platforms", authed(http.HandlerFunc(privacyHandler.Platforms)))
	mux.Handle("GET /api/privacy/platforms/{platform}/settings", authed(http.HandlerFunc(privacyHandler.GetSettings)))
	mux.Handle("PUT /api/privacy/platforms/{platform}/settings", authed(http.HandlerFunc(privacyHandler.SaveSettings)))
	mux.Handle("GET /api/privacy/platforms/{platform}/export", authed(http.HandlerFunc(privacyHandler.Export)))

	mux.Handle("POST /api/breach/email", authed(breachLimit(http.HandlerFunc(breachHandler.CheckEmail))))
	mux.Handle("POST /api/breach/password", authed(breachLimit(http.HandlerFunc(breachHandler.CheckPassword))))

	// Внешние middleware: recovery снаружи, чтобы поймать панику в логировании
	handler := middleware.LoggingWithSkip(logger, []string{"/api/health"})(mux)
	handler = middleware.RecoveryMiddleware(logger)(handler)

	return handler
}

// New wires up middleware, routes, and returns a ready server
func New(
	logger *slog.Logger,
	cfg config.Config,
	users storage.UserStorage,
	settings storage.SettingsStorage,
	checker hibp.Checker,
	pinger handlers.Pinger,
	version string,
) *Server {
	httpServer := &http.Server{
		Addr:              cfg.HTTPAddress(),
		Handler:           NewRouter(logger, cfg, users, settings, checker, pinger, version),
		ReadHeaderTimeout: readHeaderTimeout,
		ReadTimeout:       readTimeout,
		WriteTimeout:      writeTimeout,
		IdleTimeout:       idleTimeout,
	}

	return &Server{inner: httpServer}
}

// Start begins serving HTTP traffic
func (s *Server) Start() error {
	return s.inner.ListenAndServe()
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.inner.Shutdown(ctx)
}
