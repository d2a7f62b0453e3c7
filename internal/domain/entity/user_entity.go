package entity

import (
	"time"

	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// User is the aggregate root of the identity domain. Identity is the ID
// alone; two users with the same ID are the same user.
type User struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Email     valueobject.Email    `json:"email"`
	Password  valueobject.Password `json:"-"`
	Role      valueobject.Role     `json:"role"`
	IsActive  bool                 `json:"is_active"`
	CreatedAt time.Time            `json:"created_at"`
	UpdatedAt time.Time            `json:"updated_at"`
}

// NewUser constructs a user from already-validated value objects.
func NewUser(id, name string, email valueobject.Email, password valueobject.Password, role valueobject.Role, isActive bool) *User {
	now := time.Now().UTC()
	return &User{
		ID:        id,
		Name:      name,
		Email:     email,
		Password:  password,
		Role:      role,
		IsActive:  isActive,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// VerifyPassword delegates to the Password value object.
func (u *User) VerifyPassword(plaintext string) bool {
	return u.Password.Verify(plaintext)
}

// UpdateProfile mutates the provided fields and refreshes UpdatedAt.
// Zero-valued arguments leave the current value untouched.
func (u *User) UpdateProfile(name string, email valueobject.Email) {
	if name != "" {
		u.Name = name
	}
	if !email.IsZero() {
		u.Email = email
	}
	u.UpdatedAt = time.Now().UTC()
}

// Activate marks the account active. Idempotent.
func (u *User) Activate() {
	u.IsActive = true
	u.UpdatedAt = time.Now().UTC()
}

// IsSuperAdmin delegates to the Role value object.
func (u *User) IsSuperAdmin() bool { return u.Role.IsSuperAdmin() }

// IsAdmin delegates to the Role value object.
func (u *User) IsAdmin() bool { return u.Role.IsAdmin() }

// Equals compares by ID only.
func (u *User) Equals(other *User) bool {
	return other != nil && u.ID == other.ID
}
