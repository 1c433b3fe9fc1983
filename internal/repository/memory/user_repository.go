package memory

import (
	"context"
	"sync"
	"time"

	"cornell-notepad-be/internal/apperror"
	"cornell-notepad-be/internal/entity"
	"cornell-notepad-be/internal/repository/contract"
	"cornell-notepad-be/internal/repository/specification"

	"github.com/google/uuid"
)

// UserRepository is an in-memory double for contract.UserRepository.
// Specifications are interpreted by type instead of being compiled to SQL;
// the production path only ever needs equality and id-set filters.
type UserRepository struct {
	mu    sync.RWMutex
	users map[uuid.UUID]entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users: make(map[uuid.UUID]entity.User),
	}
}

var _ contract.UserRepository = (*UserRepository)(nil)

func matchUser(u *entity.User, specs []specification.Specification) bool {
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u.Id != s.ID {
				return false
			}
		case specification.ByUsername:
			if u.Username != s.Username {
				return false
			}
		case specification.ByIDs:
			found := false
			for _, id := range s.IDs {
				if u.Id == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
	}
	return true
}

func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Username == user.Username {
			return apperror.NewConflict("username already taken")
		}
	}
	r.users[user.Id] = *user
	return nil
}

func (r *UserRepository) Update(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.users[user.Id] = *user
	return nil
}

func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, hash string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil
	}
	u.PasswordHash = hash
	u.Version++
	u.UpdatedAt = time.Now()
	r.users[id] = u
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *UserRepository) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if matchUser(&u, specs) {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *UserRepository) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var count int64
	for _, u := range r.users {
		if matchUser(&u, specs) {
			count++
		}
	}
	return count, nil
}
