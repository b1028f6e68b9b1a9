package playlists

import (
	"context"
	"errors"
	"testing"

	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/models"
)

func seedPlaylist(t *testing.T, repo *MemoryRepository) *models.Playlist {
	t.Helper()
	p, err := repo.Create(context.Background(), &models.Playlist{
		ID: "p-1", Name: "Road Trip", OwnerUserName: "alice",
	})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	return p
}

func TestMemory_CreateGetList(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	seedPlaylist(t, repo)

	got, err := repo.GetByID(context.Background(), "p-1")
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if got.Name != "Road Trip" || got.OwnerUserName != "alice" {
		t.Fatalf("unexpected playlist: %+v", got)
	}

	all, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(all) != 1 || all[0].ID != "p-1" {
		t.Fatalf("unexpected list: %+v", all)
	}
}

func TestMemory_ReturnsCopies(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	seedPlaylist(t, repo)

	got, _ := repo.GetByID(context.Background(), "p-1")
	got.Name = "Mutated"

	again, _ := repo.GetByID(context.Background(), "p-1")
	if again.Name != "Road Trip" {
		t.Fatalf("stored playlist mutated through a returned copy")
	}
}

func TestMemory_RenameDelete(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	seedPlaylist(t, repo)

	if err := repo.Rename(context.Background(), "p-1", "Chill"); err != nil {
		t.Fatalf("Rename error: %v", err)
	}
	got, _ := repo.GetByID(context.Background(), "p-1")
	if got.Name != "Chill" {
		t.Fatalf("rename not applied: %+v", got)
	}

	if err := repo.Delete(context.Background(), "p-1"); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := repo.GetByID(context.Background(), "p-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound after delete, got %v", err)
	}
	if err := repo.Delete(context.Background(), "p-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound on double delete, got %v", err)
	}
}

func TestMemory_AddRemoveSong(t *testing.T) {
	t.Parallel()

	repo := NewMemoryRepository()
	seedPlaylist(t, repo)

	song := &models.Song{ID: "s-1", Title: "Take Five", Artist: "Dave Brubeck", DurationSeconds: 324}
	if err := repo.AddSong(context.Background(), "p-1", song); err != nil {
		t.Fatalf("AddSong error: %v", err)
	}

	got, _ := repo.GetByID(context.Background(), "p-1")
	if len(got.Songs) != 1 || got.Songs[0].Title != "Take Five" {
		t.Fatalf("unexpected songs: %+v", got.Songs)
	}

	if err := repo.RemoveSong(context.Background(), "p-1", "s-1"); err != nil {
		t.Fatalf("RemoveSong error: %v", err)
	}
	if err := repo.RemoveSong(context.Background(), "p-1", "s-1"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want common.ErrorNotFound for missing song, got %v", err)
	}
}
