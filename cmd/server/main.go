package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/iudanet/privacyhub/internal/crypto"
	"github.com/iudanet/privacyhub/internal/hibp"
	"github.com/iudanet/privacyhub/internal/models"
	"github.com/iudanet/privacyhub/internal/server"
	"github.com/iudanet/privacyhub/internal/server/config"
	"github.com/iudanet/privacyhub/internal/server/storage"
	"github.com/iudanet/privacyhub/internal/server/storage/sqlite"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	showVersion := flag.Bool("version", false, "Show version information")
	seed := flag.Bool("seed", false, "Create the test user and exit")
	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	// .env удобен локально; в проде полагаемся на окружение
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found; relying on existing environment")
	}

	cfg, err := config.Load()
	if err != nil {
		// Fatal misconfiguration: процесс не должен стартовать
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.LogLevel,
	}))

	ctx := context.Background()

	store, err := sqlite.New(ctx, cfg.DatabasePath)
	if err != nil {
		logger.Error("failed to init database", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", slog.Any("error", err))
		}
	}()

	if *seed {
		if err := seedTestUser(ctx, store); err != nil {
			logger.Error("failed to seed test user", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("test user ready", slog.String("email", seedEmail))
		return
	}

	var checker hibp.Checker
	if cfg.BreachMode == config.BreachModeLive {
		checker = hibp.NewClient(cfg.HIBPAPIKey)
		logger.Info("breach checks: live HIBP API")
	} else {
		checker = hibp.NewSimulated()
		logger.Info("breach checks: simulated mode")
	}

	srv := server.New(logger, cfg, store, store, checker, store, Version)

	go func() {
		logger.Info("privacyhub server listening", slog.String("addr", cfg.HTTPAddress()))
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctxShutdown); err != nil {
		logger.Error("graceful shutdown error", slog.Any("error", err))
	}
}

const (
	seedEmail    = "test@example.com"
	seedPassword = "Test@1234"
)

// seedTestUser создает тестового администратора, если его еще нет
func seedTestUser(ctx context.Context, store storage.UserStorage) error {
	if _, err := store.GetUserByEmail(ctx, seedEmail); err == nil {
		// Уже существует
		return nil
	} else if !errors.Is(err, storage.ErrUserNotFound) {
		return err
	}

	digest, err := crypto.HashPassword(seedPassword)
	if err != nil {
		return err
	}

	return store.CreateUser(ctx, &models.User{
		ID:             uuid.New().String(),
		Name:           "Test User",
		Email:          seedEmail,
		PasswordDigest: digest,
		Role:           models.RoleAdmin,
		CreatedAt:      time.Now().UTC(),
	})
}

func printVersion() {
	fmt.Printf("PrivacyHub Server\n")
	fmt.Printf("Version:    %s\n", Version)
	fmt.Printf("Build Date: %s\n", BuildDate)
	fmt.Printf("Git Commit: %s\n", GitCommit)
}
