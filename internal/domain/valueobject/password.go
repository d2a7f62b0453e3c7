package valueobject

import (
	"strings"
	"unicode"

	"golang.org/x/crypto/bcrypt"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

const passwordSpecialChars = `!@#$%^&*(),.?":{}|<>`

// Password holds a bcrypt hash of a strength-checked secret. The plaintext
// is discarded at construction and cannot be recovered.
type Password struct {
	hash string
}

// NewPassword validates the plaintext strength policy (min 8 chars, one
// uppercase, one lowercase, one digit, one special character) and hashes it.
func NewPassword(plaintext string) (Password, error) {
	if !isStrongPassword(plaintext) {
		return Password{}, apperr.Validation("password must be at least 8 characters and contain uppercase, lowercase, digit and special character")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcrypt.DefaultCost)
	if err != nil {
		return Password{}, apperr.Internal(err)
	}
	return Password{hash: string(hash)}, nil
}

// PasswordFromHash rehydrates a Password from a stored bcrypt hash. The
// hash satisfied the strength policy when it was first created.
func PasswordFromHash(hash string) Password {
	return Password{hash: hash}
}

func isStrongPassword(plaintext string) bool {
	if len(plaintext) < 8 {
		return false
	}
	var upper, lower, digit, special bool
	for _, r := range plaintext {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSpecialChars, r):
			special = true
		}
	}
	return upper && lower && digit && special
}

// Verify reports whether plaintext matches the stored hash. bcrypt performs
// the comparison in constant time.
func (p Password) Verify(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(p.hash), []byte(plaintext)) == nil
}

// Hash returns the stored bcrypt hash for persistence.
func (p Password) Hash() string { return p.hash }

// Equals compares by hash value, never by plaintext.
func (p Password) Equals(other Password) bool { return p.hash == other.hash }
