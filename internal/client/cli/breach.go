package cli

import (
	"context"
	"fmt"

	clientapi "github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
)

// RunBreach проверяет email или пароль по базам известных утечек
func RunBreach(ctx context.Context, args []string, apiClient *clientapi.Client, sessions storage.SessionStorage) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: privacyhub breach email <address> | breach password")
	}

	if _, err := requireSession(ctx, apiClient, sessions); err != nil {
		return err
	}

	switch args[0] {
	case "email":
		if len(args) < 2 {
			return fmt.Errorf("usage: privacyhub breach email <address>")
		}
		return runBreachEmail(ctx, apiClient, args[1])
	case "password":
		return runBreachPassword(ctx, apiClient)
	default:
		return fmt.Errorf("unknown breach target: %s (expected email or password)", args[0])
	}
}

func runBreachEmail(ctx context.Context, apiClient *clientapi.Client, email string) error {
	resp, err := apiClient.CheckEmail(ctx, email)
	if err != nil {
		return err
	}

	if !resp.IsBreached {
		fmt.Printf("Good news: %s was not found in known breaches.\n", resp.Email)
		return nil
	}

	fmt.Printf("%s was found in %d known breach(es):\n", resp.Email, len(resp.Breaches))
	for _, breach := range resp.Breaches {
		fmt.Printf("  - %s (%s, %s)\n", breach.Title, breach.Domain, breach.BreachDate)
	}
	fmt.Println()
	fmt.Println("Consider changing passwords for the affected accounts.")

	return nil
}

func runBreachPassword(ctx context.Context, apiClient *clientapi.Client) error {
	// Пароль запрашивается скрыто и никуда не сохраняется
	password, err := readPassword("Password to check: ")
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	resp, err := apiClient.CheckPassword(ctx, password)
	if err != nil {
		return err
	}

	if !resp.IsBreached {
		fmt.Println("Good news: this password was not found in known breaches.")
		return nil
	}

	fmt.Printf("This password appeared in %d known breach(es). Do not use it.\n", resp.Count)
	return nil
}
