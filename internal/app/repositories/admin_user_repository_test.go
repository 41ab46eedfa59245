package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

func TestCreateHashesPassword(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(NewMemoryDocStore())

	require.NoError(t, repo.Create(ctx, "admin@university.edu", "s3cret-pass", "Admin", models.RoleAdmin))

	user, err := repo.GetByEmail(ctx, "admin@university.edu")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotEqual(t, "s3cret-pass", user.Password)
	assert.NotEmpty(t, user.Password)
	assert.True(t, user.IsActive)
}

func TestCreateDuplicateEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(NewMemoryDocStore())

	require.NoError(t, repo.Create(ctx, "admin@university.edu", "s3cret-pass", "Admin", models.RoleAdmin))
	err := repo.Create(ctx, "admin@university.edu", "other-pass", "Other", models.RoleAdmin)
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(NewMemoryDocStore())
	require.NoError(t, repo.Create(ctx, "admin@university.edu", "s3cret-pass", "Admin", models.RoleAdmin))

	t.Run("success returns password-free projection", func(t *testing.T) {
		user, err := repo.Authenticate(ctx, "admin@university.edu", "s3cret-pass")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "admin@university.edu", user.Email)
		assert.Equal(t, models.RoleAdmin, user.Role)
	})

	t.Run("wrong password yields nil without error", func(t *testing.T) {
		user, err := repo.Authenticate(ctx, "admin@university.edu", "wrong")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("unknown email yields nil without error", func(t *testing.T) {
		user, err := repo.Authenticate(ctx, "ghost@university.edu", "whatever")
		require.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("disabled account is a distinct error", func(t *testing.T) {
		require.NoError(t, repo.Update(ctx, "admin@university.edu", map[string]interface{}{"isActive": false}))
		user, err := repo.Authenticate(ctx, "admin@university.edu", "s3cret-pass")
		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
		assert.Nil(t, user)
	})
}

func TestUpdateMissingUser(t *testing.T) {
	repo := NewAdminUserRepository(NewMemoryDocStore())
	err := repo.Update(context.Background(), "ghost@university.edu", map[string]interface{}{"name": "X"})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestDeleteUser(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(NewMemoryDocStore())
	require.NoError(t, repo.Create(ctx, "admin@university.edu", "s3cret-pass", "Admin", models.RoleAdmin))

	require.NoError(t, repo.Delete(ctx, "admin@university.edu"))

	user, err := repo.GetByEmail(ctx, "admin@university.edu")
	require.NoError(t, err)
	assert.Nil(t, user)

	assert.ErrorIs(t, repo.Delete(ctx, "admin@university.edu"), apperrors.ErrUserNotFound)
}

func TestListAllUsers(t *testing.T) {
	ctx := context.Background()
	repo := NewAdminUserRepository(NewMemoryDocStore())
	require.NoError(t, repo.Create(ctx, "a@university.edu", "s3cret-pass", "A", models.RoleAdmin))
	require.NoError(t, repo.Create(ctx, "b@university.edu", "s3cret-pass", "B", models.RoleSuperadmin))

	users, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}
