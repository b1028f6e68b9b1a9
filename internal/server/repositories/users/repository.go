package users

import (
	"context"

	"github.com/vibevault/vibevault/internal/server/models"
)

// Repository is the credential store: it owns username uniqueness.
type Repository interface {
	// Create inserts a new credential. Returns common.ErrorAlreadyExists
	// if the username is taken; the insert is atomic with respect to
	// concurrent signups for the same username.
	Create(ctx context.Context, user *models.User) (*models.User, error)

	// GetByUserName returns common.ErrorNotFound on a miss.
	GetByUserName(ctx context.Context, userName string) (*models.User, error)
}
