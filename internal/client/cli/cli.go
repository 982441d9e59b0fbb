package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"syscall"
	"time"

	"golang.org/x/term"

	"github.com/iudanet/privacyhub/internal/client/api"
	"github.com/iudanet/privacyhub/internal/client/storage"
)

// PrintUsage выводит справку по использованию клиента
func PrintUsage() {
	fmt.Println("PrivacyHub Client")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  privacyhub [OPTIONS] COMMAND")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version        Show version information")
	fmt.Println("  --server URL     Server URL (default: http://localhost:8080)")
	fmt.Println("  --db PATH        Path to local database (default: privacyhub-client.db)")
	fmt.Println()
	fmt.Println("Environment:")
	fmt.Println("  PRIVACYHUB_PASSWORD  Password for register/login prompts (for automation)")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  register                     Register new account")
	fmt.Println("  login                        Login to server")
	fmt.Println("  logout                       Remove local session")
	fmt.Println("  status                       Show authentication status")
	fmt.Println("  profile                      Show account profile")
	fmt.Println("  platforms                    Show privacy summary for all platforms")
	fmt.Println("  settings <platform>          Show platform privacy settings")
	fmt.Println("  settings <platform> k=v ...  Update platform privacy settings")
	fmt.Println("  export <platform>            Download platform settings as JSON file")
	fmt.Println("  breach email <address>       Check email against known breaches")
	fmt.Println("  breach password              Check password against known breaches")
	fmt.Println()
	fmt.Println("Examples:")
	fmt.Println("  privacyhub register")
	fmt.Println("  privacyhub platforms")
	fmt.Println("  privacyhub settings facebook")
	fmt.Println("  privacyhub settings facebook profileVisibility=friends locationSharing=off")
	fmt.Println("  privacyhub export twitter")
	fmt.Println("  privacyhub breach email ann@example.com")
	fmt.Println("  privacyhub --server https://example.com login")
}

// requireSession загружает локальную сессию и устанавливает токен в клиент
// Истекшая сессия равносильна отсутствующей: refresh нет, нужен новый login
func requireSession(ctx context.Context, apiClient *api.Client, sessions storage.SessionStorage) (*storage.SessionData, error) {
	session, err := sessions.GetSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrSessionNotFound) {
			return nil, fmt.Errorf("not authenticated. Please run 'privacyhub login' first")
		}
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	if time.Now().Unix() >= session.ExpiresAt {
		return nil, fmt.Errorf("session expired. Please run 'privacyhub login' again")
	}

	apiClient.SetToken(session.Token)
	return session, nil
}

// readInput читает строку из stdin
func readInput(prompt string) (string, error) {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	input, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(input), nil
}

// resolvePassword берет пароль из PRIVACYHUB_PASSWORD (для автоматизации),
// иначе запрашивает интерактивно
func resolvePassword(prompt string) (string, error) {
	if envPassword := os.Getenv("PRIVACYHUB_PASSWORD"); envPassword != "" {
		return envPassword, nil
	}
	return readPassword(prompt)
}

// readPassword читает пароль без отображения на экране
func readPassword(prompt string) (string, error) {
	fmt.Print(prompt)
	passwordBytes, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Println() // Переход на новую строку после ввода пароля
	if err != nil {
		return "", err
	}
	return string(passwordBytes), nil
}
