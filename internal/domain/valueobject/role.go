package valueobject

import "github.com/takumi-dev/go-user-management/internal/domain/apperr"

// Role is the closed set of user roles.
type Role string

const (
	RoleSuperAdmin Role = "super_admin"
	RoleAdmin      Role = "admin"
	RoleUser       Role = "user"
)

// ParseRole converts a stored string into a Role, rejecting anything
// outside the closed set.
func ParseRole(raw string) (Role, error) {
	switch Role(raw) {
	case RoleSuperAdmin, RoleAdmin, RoleUser:
		return Role(raw), nil
	}
	return "", apperr.Validation("unknown role: " + raw)
}

// IsSuperAdmin is true only for the super-admin role.
func (r Role) IsSuperAdmin() bool { return r == RoleSuperAdmin }

// IsAdmin is true for admins and the super-admin.
func (r Role) IsAdmin() bool { return r == RoleAdmin || r == RoleSuperAdmin }

func (r Role) String() string { return string(r) }
