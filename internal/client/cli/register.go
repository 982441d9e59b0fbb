package cli

import (
	"context"
	"fmt"
	"os"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
	"github.com/iudanet/privacyhub/pkg/api"
)

// RunRegister выполняет интерактивную регистрацию нового аккаунта
func RunRegister(ctx context.Context, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	fmt.Println("=== Registration ===")
	fmt.Println()

	name, err := readInput("Name: ")
	if err != nil {
		return fmt.Errorf("failed to read name: %w", err)
	}

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := resolvePassword("Password (min 8 chars): ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	// Подтверждение только при интерактивном вводе
	if os.Getenv("PRIVACYHUB_PASSWORD") == "" {
		confirmPassword, err := readPassword("Confirm password: ")
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if password != confirmPassword {
			return fmt.Errorf("passwords do not match")
		}
	}

	fmt.Println()
	fmt.Println("Registering user...")

	resp, err := apiClient.Register(ctx, api.RegisterRequest{
		Name:     name,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	// Сервер сразу выдает токен, сохраняем сессию локально
	session, err := sessionFromAuth(resp)
	if err != nil {
		return err
	}
	if err := sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Println("Registration successful!")
	fmt.Printf("User ID: %s\n", resp.User.ID)
	fmt.Printf("Email:   %s\n", resp.User.Email)
	fmt.Printf("Role:    %s\n", resp.User.Role)

	return nil
}
