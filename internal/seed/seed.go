// Package seed creates the initial data a fresh deployment needs.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/tanvir/intakeform/internal/app/models"
	"github.com/tanvir/intakeform/internal/app/repositories"
	"github.com/tanvir/intakeform/internal/config"
	"github.com/tanvir/intakeform/internal/pkg/apperrors"
)

// CreateDefaultData seeds the bootstrap superadmin account and a default
// faculty catalog when they are missing. Existing data is never overwritten.
func CreateDefaultData(ctx context.Context, repos *repositories.Repositories, cfg *config.Config, lgr zerolog.Logger) error {
	if err := seedSuperadmin(ctx, repos.AdminUserRepository, cfg, lgr); err != nil {
		return err
	}
	return seedCatalog(ctx, repos.CatalogRepository, lgr)
}

func seedSuperadmin(ctx context.Context, userRepo *repositories.AdminUserRepository, cfg *config.Config, lgr zerolog.Logger) error {
	email := cfg.Superadmin.Email
	password := cfg.Superadmin.Password
	if email == "" || password == "" {
		lgr.Warn().Msg("Superadmin credentials not configured, skipping account seed")
		return nil
	}

	existing, err := userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to check superadmin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	if err := userRepo.Create(ctx, email, password, cfg.Superadmin.Name, models.RoleSuperadmin); err != nil {
		return fmt.Errorf("failed to create superadmin account: %w", err)
	}
	lgr.Info().Str("email", email).Msg("Seeded superadmin account")
	return nil
}

func seedCatalog(ctx context.Context, catalogRepo *repositories.CatalogRepository, lgr zerolog.Logger) error {
	_, err := catalogRepo.Get(ctx)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrCatalogNotFound) {
		return fmt.Errorf("failed to check faculty catalog: %w", err)
	}

	faculties := map[string]models.Faculty{
		"fsc": {
			Name:        "Faculty of Science",
			Alias:       "fsc",
			Departments: []string{"Physics", "Chemistry", "Mathematics", "Statistics"},
		},
		"fa": {
			Name:        "Faculty of Arts",
			Alias:       "fa",
			Departments: []string{"English", "History", "Philosophy"},
		},
		"fbs": {
			Name:        "Faculty of Business Studies",
			Alias:       "fbs",
			Departments: []string{"Accounting", "Management", "Marketing", "Finance"},
		},
		"fe": {
			Name:        "Faculty of Engineering",
			Alias:       "fe",
			Departments: []string{"Computer Science and Engineering", "Electrical and Electronic Engineering", "Civil Engineering"},
		},
	}

	if err := catalogRepo.Save(ctx, faculties); err != nil {
		return fmt.Errorf("failed to seed faculty catalog: %w", err)
	}
	lgr.Info().Int("faculties", len(faculties)).Msg("Seeded default faculty catalog")
	return nil
}
