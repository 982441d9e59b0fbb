package api

import "github.com/iudanet/privacyhub/internal/models"

// EmailBreachRequest представляет запрос на проверку email по базам утечек
type EmailBreachRequest struct {
	Email string `json:"email"`
}

// EmailBreachResponse представляет результат проверки email
type EmailBreachResponse struct {
	Email      string          `json:"email"`
	IsBreached bool            `json:"isBreached"`
	Breaches   []models.Breach `json:"breaches"`
}

// PasswordBreachRequest представляет запрос на проверку пароля (k-anonymity)
// Пароль не логируется и не сохраняется
type PasswordBreachRequest struct {
	Password string `json:"password"`
}

// PasswordBreachResponse представляет результат проверки пароля
type PasswordBreachResponse struct {
	IsBreached bool  `json:"isBreached"`
	Count      int64 `json:"count"`
}
