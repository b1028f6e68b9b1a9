package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/vibevault/vibevault/internal/common"
	"github.com/vibevault/vibevault/internal/server/models"
)

// MemoryRepository is an in-memory credential store for tests and local
// runs without a database. Insert-if-absent is atomic under the mutex, so
// concurrent signups for the same username admit at most one winner.
type MemoryRepository struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{users: make(map[string]*models.User)}
}

func (r *MemoryRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.UserName]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := *user
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now()
	}
	r.users[stored.UserName] = &stored

	out := stored
	return &out, nil
}

func (r *MemoryRepository) GetByUserName(ctx context.Context, userName string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[userName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	out := *user
	return &out, nil
}
