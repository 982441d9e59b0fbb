package models

import "time"

// Роли пользователей. Хранятся свободной строкой, по умолчанию RoleStandard
const (
	RoleStandard = "Standard User"
	RoleAdmin    = "Admin"
)

// User представляет пользователя в системе
type User struct {
	ID             string    `json:"id"`         // UUID пользователя
	Name           string    `json:"name"`       // отображаемое имя
	Email          string    `json:"email"`      // уникальный email, нормализован (trim + lowercase)
	PasswordDigest string    `json:"-"`          // bcrypt хеш пароля (соль встроена в digest)
	Role           string    `json:"role"`       // роль пользователя
	CreatedAt      time.Time `json:"created_at"` // время создания
}

// PublicUser представляет публичное представление пользователя
// Возвращается клиенту, digest исключен на уровне типа
type PublicUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Public возвращает представление пользователя без password digest
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}
}
