package valueobject

import (
	"regexp"
	"strings"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
)

// emailPattern accepts local@domain.tld with a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// Email is an immutable, validated email address. It is the uniqueness key
// the repository enforces across users.
type Email struct {
	value string
}

// NewEmail validates raw and returns the Email value object.
func NewEmail(raw string) (Email, error) {
	if !isValidEmail(raw) {
		return Email{}, apperr.Validation("invalid email address")
	}
	return Email{value: raw}, nil
}

func isValidEmail(raw string) bool {
	if !emailPattern.MatchString(raw) {
		return false
	}
	// Pattern is permissive about dot placement; tighten here.
	if strings.Contains(raw, "..") {
		return false
	}
	if strings.HasPrefix(raw, ".") || strings.HasSuffix(raw, ".") {
		return false
	}
	parts := strings.Split(raw, "@")
	if len(parts) != 2 {
		return false
	}
	domain := parts[1]
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}

func (e Email) String() string { return e.value }

// Equals compares by value.
func (e Email) Equals(other Email) bool { return e.value == other.value }

// IsZero reports whether e is the uninitialized Email.
func (e Email) IsZero() bool { return e.value == "" }
