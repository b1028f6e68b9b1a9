package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/auth"
	"github.com/vibevault/vibevault/internal/server/models"
)

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type createPlaylistRequest struct {
	Name string `json:"name"`
}

type renamePlaylistRequest struct {
	Name string `json:"name"`
}

type addSongRequest struct {
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	DurationSeconds int    `json:"duration_seconds"`
}

type songResponse struct {
	ID              string `json:"id"`
	Title           string `json:"title"`
	Artist          string `json:"artist"`
	DurationSeconds int    `json:"duration_seconds"`
}

type playlistResponse struct {
	ID    string         `json:"id"`
	Name  string         `json:"name"`
	Owner string         `json:"owner"`
	Songs []songResponse `json:"songs"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {

	req, ok := decode[credentialsRequest](w, r)
	if !ok {
		return
	}

	s.logger.Info(r.Context(), "Signup request", "username", req.Username)

	token, err := s.auth.SignUp(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, tokenResponse{Token: token})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {

	req, ok := decode[credentialsRequest](w, r)
	if !ok {
		return
	}

	token, err := s.auth.SignIn(r.Context(), req.Username, req.Password)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{Token: token})
}

func (s *Server) handleListPlaylists(w http.ResponseWriter, r *http.Request) {

	playlists, err := s.playlists.List(r.Context())
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	result := make([]playlistResponse, 0, len(playlists))
	for _, playlist := range playlists {
		result = append(result, toPlaylistResponse(playlist))
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetPlaylist(w http.ResponseWriter, r *http.Request) {

	playlist, err := s.playlists.GetByID(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toPlaylistResponse(playlist))
}

func (s *Server) handleCreatePlaylist(w http.ResponseWriter, r *http.Request) {

	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := decode[createPlaylistRequest](w, r)
	if !ok {
		return
	}

	playlist, err := s.playlists.Create(r.Context(), req.Name, subject)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	s.logger.Info(r.Context(), "Playlist created", "id", playlist.ID, "owner", subject)
	writeJSON(w, http.StatusCreated, toPlaylistResponse(playlist))
}

func (s *Server) handleRenamePlaylist(w http.ResponseWriter, r *http.Request) {

	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := decode[renamePlaylistRequest](w, r)
	if !ok {
		return
	}

	if err := s.playlists.Rename(r.Context(), r.PathValue("id"), req.Name, subject); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDeletePlaylist(w http.ResponseWriter, r *http.Request) {

	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := s.playlists.Delete(r.Context(), r.PathValue("id"), subject); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleAddSong(w http.ResponseWriter, r *http.Request) {

	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	req, ok := decode[addSongRequest](w, r)
	if !ok {
		return
	}

	song, err := s.playlists.AddSong(r.Context(), r.PathValue("id"), req.Title, req.Artist, req.DurationSeconds, subject)
	if err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, songResponse{
		ID: song.ID, Title: song.Title, Artist: song.Artist, DurationSeconds: song.DurationSeconds,
	})
}

func (s *Server) handleRemoveSong(w http.ResponseWriter, r *http.Request) {

	subject, ok := auth.SubjectFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := s.playlists.RemoveSong(r.Context(), r.PathValue("id"), r.PathValue("songID"), subject); err != nil {
		s.writeServiceError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Signin failures stay a single generic 401 regardless of cause.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrorValidation):
		writeError(w, http.StatusBadRequest, "invalid request")
	case errors.Is(err, common.ErrorAlreadyExists):
		writeError(w, http.StatusConflict, "username already registered")
	case errors.Is(err, common.ErrorUnauthorized):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, common.ErrorForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, common.ErrorNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		s.logger.Error(r.Context(), "request failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func toPlaylistResponse(playlist *models.Playlist) playlistResponse {
	songs := make([]songResponse, 0, len(playlist.Songs))
	for _, song := range playlist.Songs {
		songs = append(songs, songResponse{
			ID: song.ID, Title: song.Title, Artist: song.Artist, DurationSeconds: song.DurationSeconds,
		})
	}
	return playlistResponse{
		ID:    playlist.ID,
		Name:  playlist.Name,
		Owner: playlist.OwnerUserName,
		Songs: songs,
	}
}

func decode[T any](w http.ResponseWriter, r *http.Request) (T, bool) {
	var req T
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
