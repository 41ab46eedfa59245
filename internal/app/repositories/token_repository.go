package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/docpath"
)

// TokenRepository persists refresh tokens as flat documents keyed by the
// token value.
type TokenRepository struct {
	store DocStore
}

// NewTokenRepository creates a new TokenRepository
func NewTokenRepository(store DocStore) *TokenRepository {
	return &TokenRepository{store: store}
}

// Save stores a refresh token for an admin session.
func (r *TokenRepository) Save(ctx context.Context, token, email string, expiresAt time.Time) error {
	record := models.RefreshToken{
		Token:     token,
		Email:     email,
		ExpiresAt: expiresAt,
		CreatedAt: time.Now(),
	}
	if err := r.store.Set(ctx, docpath.RefreshToken(token), record, false); err != nil {
		return fmt.Errorf("error saving refresh token: %w", err)
	}
	return nil
}

// Get reads a refresh token record.
func (r *TokenRepository) Get(ctx context.Context, token string) (*models.RefreshToken, error) {
	var record models.RefreshToken
	if err := r.store.Get(ctx, docpath.RefreshToken(token), &record); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrTokenNotFound
		}
		return nil, fmt.Errorf("error getting refresh token: %w", err)
	}
	return &record, nil
}

// Revoke marks a refresh token unusable.
func (r *TokenRepository) Revoke(ctx context.Context, token string) error {
	err := r.store.Patch(ctx, docpath.RefreshToken(token), map[string]interface{}{"revoked": true})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperrors.ErrTokenNotFound
		}
		return fmt.Errorf("error revoking refresh token: %w", err)
	}
	return nil
}
