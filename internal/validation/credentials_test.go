package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"lowercase unchanged", "ann@x.com", "ann@x.com"},
		{"uppercase folded", "Ann@X.com", "ann@x.com"},
		{"all caps folded", "ANN@X.COM", "ann@x.com"},
		{"whitespace trimmed", "  ann@x.com \n", "ann@x.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeEmail(tt.input))
		})
	}
}

func TestValidateEmail(t *testing.T) {
	require.NoError(t, ValidateEmail("user@example.com"))
	require.NoError(t, ValidateEmail("first.last@sub.example.org"))

	assert.Error(t, ValidateEmail(""))
	assert.Error(t, ValidateEmail("not-an-email"))
	assert.Error(t, ValidateEmail("missing@domain"))
	assert.Error(t, ValidateEmail("two@@example.com"))
	assert.Error(t, ValidateEmail("spaces in@example.com"))
}

func TestValidatePassword_Boundary(t *testing.T) {
	// Ровно 7 символов - отклоняется, ровно 8 - принимается
	assert.Error(t, ValidatePassword("1234567"))
	require.NoError(t, ValidatePassword("12345678"))
}

func TestValidatePassword_Empty(t *testing.T) {
	assert.Error(t, ValidatePassword(""))
}

func TestValidateName(t *testing.T) {
	require.NoError(t, ValidateName("Ann"))

	assert.Error(t, ValidateName(""))
	assert.Error(t, ValidateName("   "))
	assert.Error(t, ValidateName(strings.Repeat("a", MaxNameLen+1)))
}
