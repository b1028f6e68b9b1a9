package playlists

import (
	"context"
	"sync"
	"time"

	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/models"
)

// MemoryRepository is an in-memory playlist store for tests and local
// runs without a database. All returned values are copies.
type MemoryRepository struct {
	mu        sync.Mutex
	playlists map[string]*models.Playlist
	order     []string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{playlists: make(map[string]*models.Playlist)}
}

func (r *MemoryRepository) Create(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := clone(playlist)
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.playlists[stored.ID] = stored
	r.order = append(r.order, stored.ID)

	return clone(stored), nil
}

func (r *MemoryRepository) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	playlist, ok := r.playlists[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return clone(playlist), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]*models.Playlist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*models.Playlist, 0, len(r.order))
	for _, id := range r.order {
		if playlist, ok := r.playlists[id]; ok {
			result = append(result, clone(playlist))
		}
	}
	return result, nil
}

func (r *MemoryRepository) Rename(ctx context.Context, id string, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	playlist, ok := r.playlists[id]
	if !ok {
		return common.ErrorNotFound
	}
	playlist.Name = name
	return nil
}

func (r *MemoryRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.playlists[id]; !ok {
		return common.ErrorNotFound
	}
	delete(r.playlists, id)
	return nil
}

func (r *MemoryRepository) AddSong(ctx context.Context, playlistID string, song *models.Song) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	playlist, ok := r.playlists[playlistID]
	if !ok {
		return common.ErrorNotFound
	}
	s := *song
	playlist.Songs = append(playlist.Songs, &s)
	return nil
}

func (r *MemoryRepository) RemoveSong(ctx context.Context, playlistID string, songID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	playlist, ok := r.playlists[playlistID]
	if !ok {
		return common.ErrorNotFound
	}
	for i, song := range playlist.Songs {
		if song.ID == songID {
			playlist.Songs = append(playlist.Songs[:i], playlist.Songs[i+1:]...)
			return nil
		}
	}
	return common.ErrorNotFound
}

func clone(p *models.Playlist) *models.Playlist {
	out := *p
	out.Songs = make([]*models.Song, len(p.Songs))
	for i, song := range p.Songs {
		s := *song
		out.Songs[i] = &s
	}
	return &out
}
