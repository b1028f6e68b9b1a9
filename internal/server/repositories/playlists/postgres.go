// Package playlists provides playlist persistence over a dbx.DBTX
// (*sql.DB or *sql.Tx).
package playlists

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/dbx"
	"github.com/vibevault/vibevault/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, playlist *models.Playlist) (*models.Playlist, error) {
	query := `
		INSERT INTO playlists (id, name, owner_username)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, playlist.ID, playlist.Name, playlist.OwnerUserName)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return playlist, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Playlist, error) {
	query := `
		SELECT id, name, owner_username FROM playlists
		WHERE id = $1
	`
	playlist := &models.Playlist{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&playlist.ID, &playlist.Name, &playlist.OwnerUserName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	songs, err := r.selectSongs(ctx, id)
	if err != nil {
		return nil, err
	}
	playlist.Songs = songs

	return playlist, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]*models.Playlist, error) {
	query := `
		SELECT id, name, owner_username FROM playlists
		ORDER BY created_at
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Playlist
	byID := make(map[string]*models.Playlist)
	for rows.Next() {
		var item models.Playlist
		if err := rows.Scan(&item.ID, &item.Name, &item.OwnerUserName); err != nil {
			return nil, err
		}
		result = append(result, &item)
		byID[item.ID] = &item
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	songQuery := `
		SELECT id, playlist_id, title, artist, duration_seconds FROM songs
		ORDER BY playlist_id
	`
	songRows, err := r.db.QueryContext(ctx, songQuery)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer songRows.Close()

	for songRows.Next() {
		var song models.Song
		var playlistID string
		if err := songRows.Scan(&song.ID, &playlistID, &song.Title, &song.Artist, &song.DurationSeconds); err != nil {
			return nil, err
		}
		if playlist, ok := byID[playlistID]; ok {
			playlist.Songs = append(playlist.Songs, &song)
		}
	}
	if err := songRows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Rename(ctx context.Context, id string, name string) error {
	query := `
		UPDATE playlists SET name = $2
		WHERE id = $1
	`
	return r.execExpectingRow(ctx, query, id, name)
}

// Delete removes the playlist; songs go with it via ON DELETE CASCADE.
func (r *PostgresRepository) Delete(ctx context.Context, id string) error {
	query := `
		DELETE FROM playlists
		WHERE id = $1
	`
	return r.execExpectingRow(ctx, query, id)
}

func (r *PostgresRepository) AddSong(ctx context.Context, playlistID string, song *models.Song) error {
	query := `
		INSERT INTO songs (id, playlist_id, title, artist, duration_seconds)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := r.db.ExecContext(ctx, query,
		song.ID, playlistID, song.Title, song.Artist, song.DurationSeconds)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) RemoveSong(ctx context.Context, playlistID string, songID string) error {
	query := `
		DELETE FROM songs
		WHERE id = $1 AND playlist_id = $2
	`
	return r.execExpectingRow(ctx, query, songID, playlistID)
}

func (r *PostgresRepository) selectSongs(ctx context.Context, playlistID string) ([]*models.Song, error) {
	query := `
		SELECT id, title, artist, duration_seconds FROM songs
		WHERE playlist_id = $1
	`
	rows, err := r.db.QueryContext(ctx, query, playlistID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Song
	for rows.Next() {
		var item models.Song
		if err := rows.Scan(&item.ID, &item.Title, &item.Artist, &item.DurationSeconds); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// execExpectingRow runs a statement that must touch exactly one row and
// maps zero affected rows to common.ErrorNotFound.
func (r *PostgresRepository) execExpectingRow(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}
