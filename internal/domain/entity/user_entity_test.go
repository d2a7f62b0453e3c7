package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

func newTestUser(t *testing.T) *User {
	t.Helper()
	email, err := valueobject.NewEmail("test@example.com")
	require.NoError(t, err)
	password, err := valueobject.NewPassword("Str0ng!Pass")
	require.NoError(t, err)
	return NewUser("user-1", "Test User", email, password, valueobject.RoleUser, true)
}

func TestNewUser(t *testing.T) {
	u := newTestUser(t)

	assert.Equal(t, "user-1", u.ID)
	assert.Equal(t, "Test User", u.Name)
	assert.Equal(t, "test@example.com", u.Email.String())
	assert.Equal(t, valueobject.RoleUser, u.Role)
	assert.True(t, u.IsActive)
	assert.False(t, u.CreatedAt.IsZero())
	assert.Equal(t, u.CreatedAt, u.UpdatedAt)
}

func TestUserVerifyPassword(t *testing.T) {
	u := newTestUser(t)

	assert.True(t, u.VerifyPassword("Str0ng!Pass"))
	assert.False(t, u.VerifyPassword("wrong"))
}

func TestUserUpdateProfile(t *testing.T) {
	u := newTestUser(t)
	created := u.CreatedAt

	newEmail, err := valueobject.NewEmail("new@example.com")
	require.NoError(t, err)
	u.UpdateProfile("New Name", newEmail)

	assert.Equal(t, "New Name", u.Name)
	assert.Equal(t, "new@example.com", u.Email.String())
	assert.Equal(t, created, u.CreatedAt)
	assert.False(t, u.UpdatedAt.Before(created))

	// Zero-valued arguments leave current values untouched.
	u.UpdateProfile("", valueobject.Email{})
	assert.Equal(t, "New Name", u.Name)
	assert.Equal(t, "new@example.com", u.Email.String())
}

func TestUserRolePredicates(t *testing.T) {
	u := newTestUser(t)
	assert.False(t, u.IsSuperAdmin())
	assert.False(t, u.IsAdmin())

	u.Role = valueobject.RoleSuperAdmin
	assert.True(t, u.IsSuperAdmin())
	assert.True(t, u.IsAdmin())
}

func TestUserEquals(t *testing.T) {
	a := newTestUser(t)
	b := newTestUser(t)
	b.Name = "Different Name"

	assert.True(t, a.Equals(b)) // identity is the ID alone

	b.ID = "user-2"
	assert.False(t, a.Equals(b))
	assert.False(t, a.Equals(nil))
}
