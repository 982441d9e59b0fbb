package models

// Breach представляет одну известную утечку данных в формате HIBP v3
type Breach struct {
	Name        string   `json:"Name"`
	Title       string   `json:"Title"`
	Domain      string   `json:"Domain"`
	BreachDate  string   `json:"BreachDate"`
	PwnCount    int64    `json:"PwnCount"`
	Description string   `json:"Description"`
	DataClasses []string `json:"DataClasses"`
	IsVerified  bool     `json:"IsVerified"`
	IsSensitive bool     `json:"IsSensitive"`
}

// EmailBreachResult представляет результат проверки email по базам утечек
type EmailBreachResult struct {
	Email      string   `json:"email"`
	IsBreached bool     `json:"isBreached"`
	Breaches   []Breach `json:"breaches"`
}

// PasswordBreachResult представляет результат проверки пароля (k-anonymity)
// Count - сколько раз пароль встречался в известных утечках
type PasswordBreachResult struct {
	IsBreached bool  `json:"isBreached"`
	Count      int64 `json:"count"`
}
