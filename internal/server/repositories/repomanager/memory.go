package repomanager

import (
	"context"
	"database/sql"

	"github.com/vibevault/vibevault/internal/dbx"
	"github.com/vibevault/vibevault/internal/server/repositories/playlists"
	"github.com/vibevault/vibevault/internal/server/repositories/users"
)

// MemoryRepositoryManager vends singleton in-memory repositories. The DBTX
// argument is ignored; there is no database and nothing to migrate.
type MemoryRepositoryManager struct {
	users     *users.MemoryRepository
	playlists *playlists.MemoryRepository
}

func NewMemoryRepositoryManager() RepositoryManager {
	return &MemoryRepositoryManager{
		users:     users.NewMemoryRepository(),
		playlists: playlists.NewMemoryRepository(),
	}
}

func (m *MemoryRepositoryManager) RunMigrations(ctx context.Context, db *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(db dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Playlists(db dbx.DBTX) playlists.Repository {
	return m.playlists
}
