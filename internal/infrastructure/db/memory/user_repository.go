// Package memory provides the in-memory user store. The dataset is
// small and bounded, so lookups are linear scans over an insertion-
// ordered slice; a single RWMutex makes each operation atomic.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/sps-group/user-api/internal/core/domain"
)

type UserRepository struct {
	mu     sync.RWMutex
	users  []*domain.User
	lastID int
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func clone(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

// Insert stores a copy of user and assigns the next id. The counter is
// seeded from the highest id ever stored, so ids stay monotonic and are
// not reused after a deletion within the process lifetime.
func (r *UserRepository) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.ID > r.lastID {
			r.lastID = u.ID
		}
	}
	r.lastID++

	c := clone(user)
	c.ID = r.lastID
	r.users = append(r.users, c)
	return clone(c), nil
}

func (r *UserRepository) FindByID(_ context.Context, id int) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return clone(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) List(_ context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, clone(u))
	}
	return out, nil
}

// Replace overwrites the stored record with the same id. It backs the
// service's update path so a patched user is persisted atomically.
func (r *UserRepository) Replace(_ context.Context, user *domain.User) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = clone(user)
			return clone(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) RemoveByID(_ context.Context, id int) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *UserRepository) CountByType(_ context.Context, t domain.UserType) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	n := 0
	for _, u := range r.users {
		if u.Type == t {
			n++
		}
	}
	return n, nil
}
