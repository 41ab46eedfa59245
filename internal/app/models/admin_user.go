package models

import "time"

// Admin roles.
const (
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// ValidRole reports whether role is a known admin role.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperadmin
}

// AdminUser is a back-office account, keyed by email. Password holds the
// bcrypt hash, never plaintext.
type AdminUser struct {
	Email     string    `json:"email"`
	Password  string    `json:"password"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// AuthenticatedUser is the stripped-down projection returned on a successful
// authentication. It intentionally carries no password field.
type AuthenticatedUser struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

// Projection returns the password-free view of the account.
func (u *AdminUser) Projection() *AuthenticatedUser {
	return &AuthenticatedUser{
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
