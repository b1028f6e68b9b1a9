package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/dbx"
	"github.com/vibevault/vibevault/internal/server/models"
	"github.com/vibevault/vibevault/internal/server/repositories/repomanager"
)

// PlaylistService manages playlists and enforces ownership on every
// mutating operation. The ordering is deliberate: existence is confirmed
// first (ErrorNotFound), then ownership (ErrorForbidden), then the
// mutation runs. Authorization results are never cached across requests.
type PlaylistService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewPlaylistService(db *sql.DB, m repomanager.RepositoryManager) *PlaylistService {
	return &PlaylistService{db: db, repomanager: m}
}

// Create makes a playlist owned by ownerUsername. The owner is recorded
// once, from the authenticated subject, and never reassigned.
func (s *PlaylistService) Create(ctx context.Context, name string, ownerUsername string) (*models.Playlist, error) {
	if name == "" {
		return nil, common.ErrorValidation
	}

	if _, err := s.repomanager.Users(s.db).GetByUserName(ctx, ownerUsername); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("error resolving owner: %w", err)
	}

	playlist := &models.Playlist{
		ID:            uuid.NewString(),
		Name:          name,
		OwnerUserName: ownerUsername,
	}
	return s.repomanager.Playlists(s.db).Create(ctx, playlist)
}

func (s *PlaylistService) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	return s.repomanager.Playlists(s.db).GetByID(ctx, id)
}

func (s *PlaylistService) List(ctx context.Context) ([]*models.Playlist, error) {
	return s.repomanager.Playlists(s.db).List(ctx)
}

// IsOwner reports whether subject owns the playlist. A missing playlist is
// simply "not owner"; distinguishing absence from denial is the caller's
// job via a separate existence check.
func (s *PlaylistService) IsOwner(ctx context.Context, playlistID string, subject string) bool {
	playlist, err := s.repomanager.Playlists(s.db).GetByID(ctx, playlistID)
	if err != nil {
		return false
	}
	return playlist.OwnerUserName == subject
}

// Rename changes the playlist name on behalf of subject.
func (s *PlaylistService) Rename(ctx context.Context, id string, name string, subject string) error {
	if name == "" {
		return common.ErrorValidation
	}

	repo := s.repomanager.Playlists(s.db)
	playlist, err := repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if playlist.OwnerUserName != subject {
		return common.ErrorForbidden
	}
	return repo.Rename(ctx, id, name)
}

// Delete removes the playlist on behalf of subject. The existence check,
// ownership check, and delete run in one transaction so a denied request
// never leaves a partial mutation behind.
func (s *PlaylistService) Delete(ctx context.Context, id string, subject string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repomanager.Playlists(tx)
		playlist, err := repo.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if playlist.OwnerUserName != subject {
			return common.ErrorForbidden
		}
		return repo.Delete(ctx, id)
	})
}

// AddSong appends a song to the playlist on behalf of subject.
func (s *PlaylistService) AddSong(ctx context.Context, playlistID string, title string, artist string, durationSeconds int, subject string) (*models.Song, error) {
	if title == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Playlists(s.db)
	playlist, err := repo.GetByID(ctx, playlistID)
	if err != nil {
		return nil, err
	}
	if playlist.OwnerUserName != subject {
		return nil, common.ErrorForbidden
	}

	song := &models.Song{
		ID:              uuid.NewString(),
		Title:           title,
		Artist:          artist,
		DurationSeconds: durationSeconds,
	}
	if err := repo.AddSong(ctx, playlistID, song); err != nil {
		return nil, err
	}
	return song, nil
}

// RemoveSong removes a song from the playlist on behalf of subject. A song
// not on the playlist yields common.ErrorNotFound after the ownership check.
func (s *PlaylistService) RemoveSong(ctx context.Context, playlistID string, songID string, subject string) error {
	repo := s.repomanager.Playlists(s.db)
	playlist, err := repo.GetByID(ctx, playlistID)
	if err != nil {
		return err
	}
	if playlist.OwnerUserName != subject {
		return common.ErrorForbidden
	}
	return repo.RemoveSong(ctx, playlistID, songID)
}
