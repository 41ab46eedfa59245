package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
	"github.com/tanvir/intakeform/internal/pkg/auth"
)

func newTestAuthService(t *testing.T) (*AuthService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositoriesWithStore(repositories.NewMemoryDocStore())
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:       "test-secret",
		AccessTokenExp:  time.Hour,
		RefreshTokenExp: 24 * time.Hour,
		TokenIssuer:     "intakeform.test",
	})

	require.NoError(t, repos.AdminUserRepository.Create(context.Background(),
		"admin@university.edu", "s3cret-pass", "Admin", models.RoleAdmin))

	return NewAuthService(repos.AdminUserRepository, repos.TokenRepository, jwtService), repos
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestAuthService(t)

	resp, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.NotEmpty(t, resp.RefreshToken)
	assert.Equal(t, int(time.Hour.Seconds()), resp.ExpiresIn)
	assert.Equal(t, "admin@university.edu", resp.User.Email)

	record, err := repos.TokenRepository.Get(ctx, resp.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, "admin@university.edu", record.Email)
}

func TestLoginRejections(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestAuthService(t)

	_, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "wrong"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "ghost@university.edu", Password: "whatever"})
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials,
		"unknown email and wrong password are indistinguishable")

	require.NoError(t, repos.AdminUserRepository.Update(ctx, "admin@university.edu",
		map[string]interface{}{"isActive": false}))
	_, err = svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestRefreshRotatesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.Refresh(ctx, login.RefreshToken)
	require.NoError(t, err)
	assert.NotEqual(t, login.RefreshToken, refreshed.RefreshToken)
	assert.Equal(t, "admin@university.edu", refreshed.User.Email)

	// The old token was revoked by the rotation.
	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)

	// The new one still works.
	_, err = svc.Refresh(ctx, refreshed.RefreshToken)
	assert.NoError(t, err)
}

func TestRefreshUnknownToken(t *testing.T) {
	svc, _ := newTestAuthService(t)
	_, err := svc.Refresh(context.Background(), "never-issued")
	assert.ErrorIs(t, err, apperrors.ErrTokenNotFound)
}

func TestRefreshDisabledAccount(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestAuthService(t)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, repos.AdminUserRepository.Update(ctx, "admin@university.edu",
		map[string]interface{}{"isActive": false}))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
}

func TestLogoutRevokesToken(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestAuthService(t)

	login, err := svc.Login(ctx, &dto.LoginRequest{Email: "admin@university.edu", Password: "s3cret-pass"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, login.RefreshToken))

	_, err = svc.Refresh(ctx, login.RefreshToken)
	assert.ErrorIs(t, err, apperrors.ErrTokenRevoked)
}
