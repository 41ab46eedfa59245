package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/auth"
	"github.com/tanvir/intakeform/internal/pkg/docpath"
	"github.com/tanvir/intakeform/internal/pkg/logger"
)

// AdminUserRepository handles back-office accounts in the flat admin-users
// collection, keyed by email.
type AdminUserRepository struct {
	store DocStore
}

// NewAdminUserRepository creates a new AdminUserRepository
func NewAdminUserRepository(store DocStore) *AdminUserRepository {
	return &AdminUserRepository{store: store}
}

// GetByEmail looks an account up by querying the email field across the
// collection, not by key. Returns nil without error when no account matches.
func (r *AdminUserRepository) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	docs, err := r.store.FindInGroup(ctx, docpath.AdminUsersCollection, "", "email", email)
	if err != nil {
		return nil, fmt.Errorf("error getting admin user: %w", err)
	}
	if len(docs) == 0 {
		return nil, nil
	}

	var user models.AdminUser
	if err := json.Unmarshal(docs[0].Data, &user); err != nil {
		return nil, fmt.Errorf("failed to decode admin user %s: %w", docs[0].Path, err)
	}
	return &user, nil
}

// Create stores a new account. The password is bcrypt-hashed before it
// touches the store; plaintext is never persisted. Fails when an account
// with the email already exists.
func (r *AdminUserRepository) Create(ctx context.Context, email, password, name, role string) error {
	existing, err := r.GetByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return fmt.Errorf("error hashing password: %w", err)
	}

	now := time.Now()
	user := models.AdminUser{
		Email:     email,
		Password:  hash,
		Name:      name,
		Role:      role,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.store.Set(ctx, docpath.AdminUser(email), user, false); err != nil {
		logger.Error().Err(err).Str("email", email).Msg("Error creating admin user")
		return fmt.Errorf("error creating admin user: %w", err)
	}
	return nil
}

// Authenticate verifies credentials. An unknown email or a wrong password
// yields a nil result without error; a disabled account is a distinct error
// so the caller can show different messaging. On success the password-free
// projection is returned.
func (r *AdminUserRepository) Authenticate(ctx context.Context, email, password string) (*models.AuthenticatedUser, error) {
	user, err := r.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, nil
	}

	if !user.IsActive {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, nil
	}

	return user.Projection(), nil
}

// Update patches an account by key. A non-empty password in fields must
// already be hashed by the caller; this method only adds the
// updated-timestamp.
func (r *AdminUserRepository) Update(ctx context.Context, email string, fields map[string]interface{}) error {
	patch := make(map[string]interface{}, len(fields)+1)
	for k, v := range fields {
		patch[k] = v
	}
	patch["updatedAt"] = time.Now().Format(time.RFC3339)

	if err := r.store.Patch(ctx, docpath.AdminUser(email), patch); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating admin user: %w", err)
	}
	return nil
}

// Delete removes an account by key.
func (r *AdminUserRepository) Delete(ctx context.Context, email string) error {
	if err := r.store.Delete(ctx, docpath.AdminUser(email)); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting admin user: %w", err)
	}
	return nil
}

// ListAll returns every account, no pagination.
func (r *AdminUserRepository) ListAll(ctx context.Context) ([]*models.AdminUser, error) {
	docs, err := r.store.List(ctx, docpath.AdminUsersCollection)
	if err != nil {
		return nil, fmt.Errorf("error listing admin users: %w", err)
	}

	users := make([]*models.AdminUser, 0, len(docs))
	for _, doc := range docs {
		var user models.AdminUser
		if err := json.Unmarshal(doc.Data, &user); err != nil {
			logger.Error().Err(err).Str("path", doc.Path).Msg("Skipping undecodable admin user document")
			continue
		}
		users = append(users, &user)
	}
	return users, nil
}
