// Package httpapi exposes the REST transport of the server: auth endpoints,
// playlist CRUD, and the bearer-token middleware that establishes the
// per-request security context.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/vibevault/vibevault/internal/logging"
	"github.com/vibevault/vibevault/internal/server/services"
)

type Server struct {
	address   string
	logger    logging.Logger
	auth      *services.AuthService
	playlists *services.PlaylistService
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, as *services.AuthService, ps *services.PlaylistService, secretKey string) *Server {
	return &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		auth:      as,
		playlists: ps,
		jwtSecret: []byte(secretKey),
	}
}

// Handler returns the routed handler. Reads are public; every mutating
// playlist route goes through requireAuth.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/auth/signup", s.handleSignUp)
	mux.HandleFunc("POST /api/auth/signin", s.handleSignIn)

	mux.HandleFunc("GET /api/playlists", s.handleListPlaylists)
	mux.HandleFunc("GET /api/playlists/{id}", s.handleGetPlaylist)

	mux.HandleFunc("POST /api/playlists", s.requireAuth(s.handleCreatePlaylist))
	mux.HandleFunc("PUT /api/playlists/{id}", s.requireAuth(s.handleRenamePlaylist))
	mux.HandleFunc("DELETE /api/playlists/{id}", s.requireAuth(s.handleDeletePlaylist))
	mux.HandleFunc("POST /api/playlists/{id}/songs", s.requireAuth(s.handleAddSong))
	mux.HandleFunc("DELETE /api/playlists/{id}/songs/{songID}", s.requireAuth(s.handleRemoveSong))

	return mux
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {

	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown error", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
