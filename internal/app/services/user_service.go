package services

import (
	"context"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/auth"
	"github.com/tanvir/intakeform/internal/pkg/validation"
)

// UserService handles superadmin management of back-office accounts.
type UserService struct {
	userRepo *repositories.AdminUserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.AdminUserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// List returns every account without password hashes.
func (s *UserService) List(ctx context.Context) ([]*models.AuthenticatedUser, error) {
	users, err := s.userRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	projections := make([]*models.AuthenticatedUser, 0, len(users))
	for _, user := range users {
		projections = append(projections, user.Projection())
	}
	return projections, nil
}

// Create provisions a new account.
func (s *UserService) Create(ctx context.Context, req *dto.CreateUserRequest) (*models.AuthenticatedUser, error) {
	if !models.ValidRole(req.Role) {
		return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be admin or superadmin")
	}
	if err := s.userRepo.Create(ctx, req.Email, req.Password, req.Name, req.Role); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return user.Projection(), nil
}

// Update patches an existing account. A supplied password is re-hashed
// before it is stored.
func (s *UserService) Update(ctx context.Context, email string, req *dto.UpdateUserRequest) (*models.AuthenticatedUser, error) {
	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, apperrors.ErrUserNotFound
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Role != nil {
		if !models.ValidRole(*req.Role) {
			return nil, apperrors.NewCustomError(apperrors.ErrValidationFailed, "role must be admin or superadmin")
		}
		fields["role"] = *req.Role
	}
	if req.IsActive != nil {
		fields["isActive"] = *req.IsActive
	}
	if req.Password != nil {
		hash, err := auth.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		fields["password"] = hash
	}

	if len(fields) > 0 {
		if err := s.userRepo.Update(ctx, email, fields); err != nil {
			return nil, err
		}
	}

	updated, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, apperrors.ErrUserNotFound
	}
	return updated.Projection(), nil
}

// Delete removes an account.
func (s *UserService) Delete(ctx context.Context, email string) error {
	return s.userRepo.Delete(ctx, email)
}

// GeneratePassword produces a random credential with at least one character
// from each category.
func (s *UserService) GeneratePassword() string {
	return validation.GeneratePassword(validation.DefaultPasswordLength)
}
