package httpapi

import (
	"net/http"
	"strings"

	"github.com/vibevault/vibevault/internal/server/auth"
)

// requireAuth extracts the bearer token, verifies it, and binds the
// subject to the request context. Every failure — missing header,
// malformed token, bad signature, expiry — produces the same 401 body so
// the response does not leak which check failed.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		header := r.Header.Get("Authorization")
		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		subject, err := auth.GetSubjectFromToken(tokenString, s.jwtSecret)
		if err != nil {
			s.logger.Warn(r.Context(), "token rejected", "error", err)
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		next(w, r.WithContext(auth.WithSubject(r.Context(), subject)))
	}
}
