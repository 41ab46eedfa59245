package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

func newTestUserService(t *testing.T) (*UserService, *repositories.Repositories) {
	t.Helper()
	repos := repositories.NewRepositoriesWithStore(repositories.NewMemoryDocStore())
	return NewUserService(repos.AdminUserRepository), repos
}

func TestCreateAndListUsers(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUserService(t)

	created, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "admin@university.edu",
		Name:     "Admin",
		Password: "s3cret-pass",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, "Admin", created.Name)

	users, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "admin@university.edu", users[0].Email)
}

func TestCreateRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestUserService(t)
	_, err := svc.Create(context.Background(), &dto.CreateUserRequest{
		Email:    "admin@university.edu",
		Name:     "Admin",
		Password: "s3cret-pass",
		Role:     "root",
	})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestUpdateRehashesPassword(t *testing.T) {
	ctx := context.Background()
	svc, repos := newTestUserService(t)

	_, err := svc.Create(ctx, &dto.CreateUserRequest{
		Email:    "admin@university.edu",
		Name:     "Admin",
		Password: "old-pass-123",
		Role:     models.RoleAdmin,
	})
	require.NoError(t, err)

	newPass := "new-pass-456"
	_, err = svc.Update(ctx, "admin@university.edu", &dto.UpdateUserRequest{Password: &newPass})
	require.NoError(t, err)

	user, err := repos.AdminUserRepository.Authenticate(ctx, "admin@university.edu", "new-pass-456")
	require.NoError(t, err)
	assert.NotNil(t, user)

	user, err = repos.AdminUserRepository.Authenticate(ctx, "admin@university.edu", "old-pass-123")
	require.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateUnknownUser(t *testing.T) {
	svc, _ := newTestUserService(t)
	name := "Ghost"
	_, err := svc.Update(context.Background(), "ghost@university.edu", &dto.UpdateUserRequest{Name: &name})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
}

func TestGeneratePasswordIsUsable(t *testing.T) {
	svc, _ := newTestUserService(t)
	password := svc.GeneratePassword()
	assert.Len(t, password, 12)

	other := svc.GeneratePassword()
	assert.NotEqual(t, password, other)
}
