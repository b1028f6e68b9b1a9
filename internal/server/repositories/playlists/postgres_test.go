package playlists

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const (
	insertPlaylistQuery = `(?s)^\s*INSERT\s+INTO\s+playlists\s*\(id,\s*name,\s*owner_username\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3\)\s*$`
	selectPlaylistQuery = `(?s)^\s*SELECT\s+id,\s*name,\s*owner_username\s+FROM\s+playlists\s+WHERE\s+id\s*=\s*\$1\s*$`
	selectSongsQuery    = `(?s)^\s*SELECT\s+id,\s*title,\s*artist,\s*duration_seconds\s+FROM\s+songs\s+WHERE\s+playlist_id\s*=\s*\$1\s*$`
	renameQuery         = `(?s)^\s*UPDATE\s+playlists\s+SET\s+name\s*=\s*\$2\s+WHERE\s+id\s*=\s*\$1\s*$`
	deletePlaylistQuery = `(?s)^\s*DELETE\s+FROM\s+playlists\s+WHERE\s+id\s*=\s*\$1\s*$`
	deleteSongQuery     = `(?s)^\s*DELETE\s+FROM\s+songs\s+WHERE\s+id\s*=\s*\$1\s+AND\s+playlist_id\s*=\s*\$2\s*$`
)

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertPlaylistQuery).
		WithArgs("p-1", "Road Trip", "alice").
		WillReturnResult(sqlmock.NewResult(0, 1))

	p := &models.Playlist{ID: "p-1", Name: "Road Trip", OwnerUserName: "alice"}
	got, err := repo.Create(context.Background(), p)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if got.ID != "p-1" {
		t.Fatalf("unexpected playlist: %+v", got)
	}
}

func TestGetByID_FoundWithSongs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectPlaylistQuery).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "owner_username"}).
			AddRow("p-1", "Road Trip", "alice"))
	mock.ExpectQuery(selectSongsQuery).
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "title", "artist", "duration_seconds"}).
			AddRow("s-1", "Take Five", "Dave Brubeck", 324).
			AddRow("s-2", "So What", "Miles Davis", 545))

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.OwnerUserName != "alice" || len(got.Songs) != 2 {
		t.Fatalf("unexpected playlist: %+v", got)
	}
	if got.Songs[0].Title != "Take Five" || got.Songs[1].DurationSeconds != 545 {
		t.Fatalf("unexpected songs: %+v %+v", got.Songs[0], got.Songs[1])
	}
}

func TestGetByID_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectPlaylistQuery).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByID(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestRename_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(renameQuery).
		WithArgs("ghost", "New Name").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Rename(context.Background(), "ghost", "New Name")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}

func TestDelete_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deletePlaylistQuery).
		WithArgs("p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
}

func TestRemoveSong_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(deleteSongQuery).
		WithArgs("s-ghost", "p-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveSong(context.Background(), "p-1", "s-ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound, got %v", err)
	}
}
