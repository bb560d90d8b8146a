package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/vadimbarashkov/tinyapp/internal/entity"
)

type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*entity.User)}
}

// Save stores a new account. Email uniqueness is checked under the same lock as the insert.
func (r *UserRepository) Save(ctx context.Context, user *entity.User) (*entity.User, error) {
	const op = "adapter.repository.memory.UserRepository.Save"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.ID]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserIDExists)
	}

	if r.findByEmail(user.Email) != nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrEmailExists)
	}

	stored := *user
	r.users[user.ID] = &stored

	saved := stored
	return &saved, nil
}

func (r *UserRepository) RetrieveByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "adapter.repository.memory.UserRepository.RetrieveByEmail"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user := r.findByEmail(email)
	if user == nil {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
	}

	found := *user
	return &found, nil
}

func (r *UserRepository) RetrieveByID(ctx context.Context, id string) (*entity.User, error) {
	const op = "adapter.repository.memory.UserRepository.RetrieveByID"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrUserNotFound)
	}

	found := *user
	return &found, nil
}

// findByEmail scans accounts for an exact, case-sensitive email match.
func (r *UserRepository) findByEmail(email string) *entity.User {
	for _, user := range r.users {
		if user.Email == email {
			return user
		}
	}

	return nil
}
