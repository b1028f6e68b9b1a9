package repomanager

import (
	"context"
	"database/sql"

	"github.com/vibevault/vibevault/internal/dbx"
	"github.com/vibevault/vibevault/internal/server/repositories/playlists"
	"github.com/vibevault/vibevault/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Playlists(db dbx.DBTX) playlists.Repository
}
