// Package services contains server-side business logic. This file
// implements AuthService, which handles signup and signin and issues JWTs.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/auth"
	"github.com/vibevault/vibevault/internal/server/config"
	"github.com/vibevault/vibevault/internal/server/models"
	"github.com/vibevault/vibevault/internal/server/repositories/repomanager"
)

// dummyPasswordHash is a syntactically valid bcrypt record compared against
// when the username is unknown, so both SignIn failure paths cost one
// bcrypt comparison and stay indistinguishable by latency.
const dummyPasswordHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthService provides authentication operations:
//   - SignUp: create a credential and mint a token (signup implies signin)
//   - SignIn: verify a credential and mint a token
type AuthService struct {
	db                    *sql.DB
	repomanager           repomanager.RepositoryManager
	jwtSecret             []byte
	tokenValidityDuration time.Duration
}

// NewAuthService constructs an AuthService using repositories and server config.
func NewAuthService(db *sql.DB, m repomanager.RepositoryManager, cfg *config.Config) *AuthService {
	return &AuthService{
		db:                    db,
		repomanager:           m,
		jwtSecret:             []byte(cfg.SecretKey),
		tokenValidityDuration: cfg.TokenValidityDuration,
	}
}

// SignUp creates a credential for username and returns a token for
// immediate authenticated use. A taken username yields
// common.ErrorAlreadyExists and no token.
func (s *AuthService) SignUp(ctx context.Context, username string, password string) (string, error) {
	if username == "" || password == "" {
		return "", common.ErrorValidation
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return "", common.ErrorInternal
	}

	repo := s.repomanager.Users(s.db)
	user := &models.User{UserName: username, PasswordHash: hash}
	if _, err := repo.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			return "", common.ErrorAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return s.generateToken(username)
}

// SignIn verifies username/password and returns a fresh token. An unknown
// username and a wrong password both yield common.ErrorUnauthorized; the
// unknown-user path still performs a bcrypt comparison so the two cases
// cannot be told apart by response or timing.
func (s *AuthService) SignIn(ctx context.Context, username string, password string) (string, error) {
	repo := s.repomanager.Users(s.db)

	user, err := repo.GetByUserName(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			auth.CheckPassword(password, dummyPasswordHash)
			return "", common.ErrorUnauthorized
		}
		return "", common.ErrorInternal
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return "", common.ErrorUnauthorized
	}

	return s.generateToken(username)
}

func (s *AuthService) generateToken(username string) (string, error) {
	token, err := auth.GenerateToken(username, s.jwtSecret, s.tokenValidityDuration)
	if err != nil {
		return "", common.ErrorInternal
	}
	return token, nil
}
