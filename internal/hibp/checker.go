package hibp

import (
	"context"
	"errors"

	"github.com/iudanet/privacyhub/internal/models"
)

// ErrRateLimited indicates the upstream breach API throttled the request
var ErrRateLimited = errors.New("breach API rate limited")

// Checker defines interface for breach lookups
// Implementations: Client (live HIBP API) and Simulated (deterministic fixtures)
type Checker interface {
	// CheckEmail reports known breaches for an email address
	CheckEmail(ctx context.Context, email string) (*models.EmailBreachResult, error)

	// CheckPassword reports how many times a password appeared in known
	// breaches, using the k-anonymity range API: only the first five
	// characters of the SHA-1 hash ever leave the process
	CheckPassword(ctx context.Context, password string) (*models.PasswordBreachResult, error)
}
