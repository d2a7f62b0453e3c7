package valueobject

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

func TestNewPassword(t *testing.T) {
	t.Run("accepts strong password", func(t *testing.T) {
		p, err := NewPassword("Str0ng!Pass")
		require.NoError(t, err)
		assert.NotEmpty(t, p.Hash())
		assert.NotEqual(t, "Str0ng!Pass", p.Hash())
	})

	weak := map[string]string{
		"too short":  "S0r!t",
		"no upper":   "weakpass1!",
		"no lower":   "WEAKPASS1!",
		"no digit":   "WeakPassword!",
		"no special": "WeakPass123",
	}
	for name, plaintext := range weak {
		t.Run(name, func(t *testing.T) {
			_, err := NewPassword(plaintext)
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
		})
	}
}

func TestPasswordVerify(t *testing.T) {
	p, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	assert.True(t, p.Verify("Str0ng!Pass"))
	assert.False(t, p.Verify("Wr0ng!Pass"))
	assert.False(t, p.Verify(""))
}

func TestPasswordFromHash(t *testing.T) {
	original, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	restored := PasswordFromHash(original.Hash())
	assert.True(t, restored.Verify("Str0ng!Pass"))
	assert.True(t, restored.Equals(original))
}

func TestPasswordHashIsSalted(t *testing.T) {
	a, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)
	b, err := NewPassword("Str0ng!Pass")
	require.NoError(t, err)

	// bcrypt salts every hash, so equal plaintexts never share a hash.
	assert.False(t, a.Equals(b))
}
