package playlists

import (
	"context"

	"github.com/vibevault/vibevault/internal/server/models"
)

// Repository stores playlists and their songs. Missing rows surface as
// common.ErrorNotFound; existence/ownership policy lives in the service
// layer, not here.
type Repository interface {
	Create(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error)
	GetByID(ctx context.Context, id string) (*models.Playlist, error)
	List(ctx context.Context) ([]*models.Playlist, error)
	Rename(ctx context.Context, id string, name string) error
	Delete(ctx context.Context, id string) error
	AddSong(ctx context.Context, playlistID string, song *models.Song) error
	RemoveSong(ctx context.Context, playlistID string, songID string) error
}
