package users

import (
	"context"
	"helpmynew-service/internal/app/models"
	"sync"
)

// UserMemoryRepository keeps users in process memory.
type UserMemoryRepository struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewUserMemoryRepository() *UserMemoryRepository {
	return &UserMemoryRepository{users: make(map[string]models.User)}
}

func (r *UserMemoryRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[userID]
	if !ok {
		return nil, nil
	}
	return &user, nil
}

func (r *UserMemoryRepository) Upsert(ctx context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.users[user.UserID] = *user
	return nil
}
