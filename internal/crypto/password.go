package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/iudanet/privacyhub/internal/validation"
)

// BcryptCost стоимость bcrypt (10 раундов, как в оригинальной схеме хранения)
const BcryptCost = 10

// HashPassword хеширует пароль через bcrypt со случайной солью
// Соль генерируется bcrypt-ом и встроена в итоговый digest
// Пароль короче минимальной длины отклоняется до хеширования
func HashPassword(password string) (string, error) {
	if err := validation.ValidatePassword(password); err != nil {
		return "", err
	}

	digest, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}

	return string(digest), nil
}

// VerifyPassword проверяет, соответствует ли пароль сохраненному digest
// bcrypt сравнивает в constant time, plaintext никогда не восстанавливается
func VerifyPassword(password, digest string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}
	if digest == "" {
		return fmt.Errorf("password digest cannot be empty")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(digest), []byte(password)); err != nil {
		return fmt.Errorf("invalid password")
	}

	return nil
}
