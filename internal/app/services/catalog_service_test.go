package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

func TestCatalogUpdatePreservesCreationTimes(t *testing.T) {
	ctx := context.Background()
	repos := repositories.NewRepositoriesWithStore(repositories.NewMemoryDocStore())
	svc := NewCatalogService(repos.CatalogRepository)

	_, err := svc.Get(ctx)
	assert.ErrorIs(t, err, apperrors.ErrCatalogNotFound)

	first, err := svc.Update(ctx, &dto.CatalogUpdateRequest{
		Faculties: map[string]dto.FacultyInput{
			"fsc": {
				Name:        "Faculty of Science",
				Alias:       "fsc",
				Departments: []string{"Physics"},
			},
		},
	})
	require.NoError(t, err)
	createdAt := first.Faculties["fsc"].CreatedAt
	require.False(t, createdAt.IsZero())

	second, err := svc.Update(ctx, &dto.CatalogUpdateRequest{
		Faculties: map[string]dto.FacultyInput{
			"fsc": {
				Name:        "Faculty of Science",
				Alias:       "fsc",
				Departments: []string{"Physics", "Chemistry"},
			},
			"fa": {
				Name:        "Faculty of Arts",
				Alias:       "fa",
				Departments: []string{"English"},
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, createdAt.Unix(), second.Faculties["fsc"].CreatedAt.Unix())
	assert.Equal(t, 2, second.TotalFaculties)
	assert.Equal(t, 3, second.TotalDepartments)
}
