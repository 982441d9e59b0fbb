package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
	"github.com/iudanet/privacyhub/pkg/api"
)

// RunLogin выполняет интерактивный login
func RunLogin(ctx context.Context, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	fmt.Println("=== Login ===")
	fmt.Println()

	email, err := readInput("Email: ")
	if err != nil {
		return fmt.Errorf("failed to read email: %w", err)
	}

	password, err := resolvePassword("Password: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Println()
	fmt.Println("Logging in...")

	resp, err := apiClient.Login(ctx, api.LoginRequest{
		Email:    email,
		Password: password,
	})
	if err != nil {
		return err
	}

	session, err := sessionFromAuth(resp)
	if err != nil {
		return err
	}
	if err := sessions.SaveSession(ctx, session); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	fmt.Println()
	fmt.Printf("Logged in as %s\n", resp.User.Email)

	return nil
}
