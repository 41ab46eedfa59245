package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	Store                DocStore
	SubmissionRepository *SubmissionRepository
	CatalogRepository    *CatalogRepository
	AdminUserRepository  *AdminUserRepository
	TokenRepository      *TokenRepository
	ComplaintRepository  *ComplaintRepository
}

// NewRepositories initializes all repositories over a Postgres-backed
// document store.
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return NewRepositoriesWithStore(NewPostgresDocStore(db))
}

// NewRepositoriesWithStore initializes all repositories over the given
// document store.
func NewRepositoriesWithStore(store DocStore) *Repositories {
	return &Repositories{
		Store:                store,
		SubmissionRepository: NewSubmissionRepository(store),
		CatalogRepository:    NewCatalogRepository(store),
		AdminUserRepository:  NewAdminUserRepository(store),
		TokenRepository:      NewTokenRepository(store),
		ComplaintRepository:  NewComplaintRepository(store),
	}
}
