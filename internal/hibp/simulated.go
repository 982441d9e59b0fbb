package hibp

import (
	"context"
	"hash/fnv"
	"strings"

	"github.com/iudanet/privacyhub/internal/models"
)

// Simulated представляет детерминированный checker без сетевых вызовов
// Результат зависит только от входа, поэтому режим пригоден для демо и тестов
type Simulated struct{}

// NewSimulated создает симулированный checker
func NewSimulated() *Simulated {
	return &Simulated{}
}

// Фикстуры утечек для симулированного режима
var simulatedBreaches = []models.Breach{
	{
		Name:        "ExampleBreach",
		Title:       "Example Breach",
		Domain:      "example.com",
		BreachDate:  "2023-05-12",
		PwnCount:    7482156,
		Description: "Email addresses and passwords exposed",
		DataClasses: []string{"Email addresses", "Passwords"},
		IsVerified:  true,
	},
	{
		Name:        "AnotherService",
		Title:       "Another Service",
		Domain:      "another-service.net",
		BreachDate:  "2022-11-03",
		PwnCount:    912400,
		Description: "Email and personal information leaked",
		DataClasses: []string{"Email addresses", "Names", "Phone numbers"},
		IsVerified:  true,
	},
}

// CheckEmail детерминированно решает по FNV хешу адреса, "утек" ли email
func (s *Simulated) CheckEmail(ctx context.Context, email string) (*models.EmailBreachResult, error) {
	if breached(strings.ToLower(email)) {
		return &models.EmailBreachResult{
			Email:      email,
			IsBreached: true,
			Breaches:   simulatedBreaches,
		}, nil
	}

	return &models.EmailBreachResult{Email: email, Breaches: []models.Breach{}}, nil
}

// CheckPassword детерминированно вычисляет счетчик утечек пароля
func (s *Simulated) CheckPassword(ctx context.Context, password string) (*models.PasswordBreachResult, error) {
	if !breached(password) {
		return &models.PasswordBreachResult{}, nil
	}

	h := fnv.New32a()
	_, _ = h.Write([]byte(password))
	count := int64(h.Sum32()%100000) + 1

	return &models.PasswordBreachResult{IsBreached: true, Count: count}, nil
}

// breached - детерминированная "монетка" по FNV хешу входа
func breached(input string) bool {
	h := fnv.New32a()
	_, _ = h.Write([]byte(input))
	return h.Sum32()%2 == 0
}
