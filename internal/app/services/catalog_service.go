package services

import (
	"context"
	"errors"
	"time"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/models/dto"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

// CatalogService handles the faculty/department reference data behind the
// form's dropdowns.
type CatalogService struct {
	catalogRepo *repositories.CatalogRepository
}

// NewCatalogService creates a new catalog service instance
func NewCatalogService(catalogRepo *repositories.CatalogRepository) *CatalogService {
	return &CatalogService{catalogRepo: catalogRepo}
}

// Get returns the current catalog.
func (s *CatalogService) Get(ctx context.Context) (*models.Catalog, error) {
	return s.catalogRepo.Get(ctx)
}

// Update replaces the catalog wholesale. Creation timestamps of faculties
// that already exist are preserved.
func (s *CatalogService) Update(ctx context.Context, req *dto.CatalogUpdateRequest) (*models.Catalog, error) {
	existing, err := s.catalogRepo.Get(ctx)
	if err != nil && !errors.Is(err, apperrors.ErrCatalogNotFound) {
		return nil, err
	}

	now := time.Now()
	faculties := make(map[string]models.Faculty, len(req.Faculties))
	for alias, input := range req.Faculties {
		createdAt := now
		if existing != nil {
			if prev, ok := existing.Faculties[alias]; ok && !prev.CreatedAt.IsZero() {
				createdAt = prev.CreatedAt
			}
		}
		faculties[alias] = models.Faculty{
			Name:        input.Name,
			Alias:       input.Alias,
			Departments: input.Departments,
			CreatedAt:   createdAt,
		}
	}

	if err := s.catalogRepo.Save(ctx, faculties); err != nil {
		return nil, err
	}
	return s.catalogRepo.Get(ctx)
}
