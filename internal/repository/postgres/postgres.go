package postgres

import (
	"database/sql"

	"nexus-asset-manager/internal/repository"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/lib/pq"
)

// Store groups the repositories sharing one connection pool. Both
// repositories expose List/GetByID/Delete, so they are named fields rather
// than embedded.
type Store struct {
	db        *sql.DB
	Assets    repository.AssetRepository
	Documents repository.DocumentRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:        db,
		Assets:    NewAssetRepository(db),
		Documents: NewDocumentRepository(db),
	}
}

// DB exposes the underlying pool for health checks and shutdown.
func (s *Store) DB() *sql.DB {
	return s.db
}
