package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

func TestNewEmail(t *testing.T) {
	valid := []string{
		"test@example.com",
		"user.name@example.com",
		"user+tag@example.co.jp",
		"a_b%c-d@sub.example.org",
		"1234@example.io",
	}
	for _, raw := range valid {
		t.Run("valid/"+raw, func(t *testing.T) {
			email, err := NewEmail(raw)
			require.NoError(t, err)
			assert.Equal(t, raw, email.String())
			assert.False(t, email.IsZero())
		})
	}

	invalid := []string{
		"",
		"invalid-email",
		"@example.com",
		"test@",
		"test@example",
		"test@example.c",
		"a..b@example.com",
		".leading@example.com",
		"trailing@example.com.",
		"test@.example.com",
		"two@@example.com",
		"spaces in@example.com",
	}
	for _, raw := range invalid {
		t.Run("invalid/"+raw, func(t *testing.T) {
			_, err := NewEmail(raw)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
		})
	}
}

func TestEmailEquals(t *testing.T) {
	a, err := NewEmail("test@example.com")
	require.NoError(t, err)
	b, err := NewEmail("test@example.com")
	require.NoError(t, err)
	c, err := NewEmail("other@example.com")
	require.NoError(t, err)

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestEmailZeroValue(t *testing.T) {
	var e Email
	assert.True(t, e.IsZero())
	assert.Empty(t, e.String())
}
