package dto

// CreateUserRequest provisions a new administrator account.
type CreateUserRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Role     string `json:"role" binding:"required,oneof=admin superadmin"`
}

// UpdateUserRequest patches an administrator account. Only supplied fields
// change; a supplied password is re-hashed before storage.
type UpdateUserRequest struct {
	Name     *string `json:"name,omitempty" binding:"omitempty,max=100"`
	Password *string `json:"password,omitempty" binding:"omitempty,min=8"`
	Role     *string `json:"role,omitempty" binding:"omitempty,oneof=admin superadmin"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// GeneratedPasswordResponse returns a freshly generated credential.
type GeneratedPasswordResponse struct {
	Password string `json:"password"`
}
