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

// CatalogRepository handles the single faculty/department reference-data
// document.
type CatalogRepository struct {
	store DocStore
}

// NewCatalogRepository creates a new CatalogRepository
func NewCatalogRepository(store DocStore) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// Get reads the catalog document.
func (r *CatalogRepository) Get(ctx context.Context) (*models.Catalog, error) {
	var catalog models.Catalog
	if err := r.store.Get(ctx, docpath.BasicInfo(), &catalog); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.ErrCatalogNotFound
		}
		return nil, fmt.Errorf("error getting catalog: %w", err)
	}
	return &catalog, nil
}

// Save overwrites the faculty map wholesale, recomputing the aggregate
// counts. The write is a merge at the document level, matching the setup
// screen's save behavior.
func (r *CatalogRepository) Save(ctx context.Context, faculties map[string]models.Faculty) error {
	totalDepartments := 0
	for _, f := range faculties {
		totalDepartments += len(f.Departments)
	}

	catalog := models.Catalog{
		Faculties:        faculties,
		UpdatedAt:        time.Now(),
		TotalFaculties:   len(faculties),
		TotalDepartments: totalDepartments,
	}

	if err := r.store.Set(ctx, docpath.BasicInfo(), catalog, true); err != nil {
		return fmt.Errorf("error saving catalog: %w", err)
	}
	return nil
}
