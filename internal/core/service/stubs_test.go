package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sps-group/user-api/internal/core/domain"
)

// stubUserRepo is a minimal in-memory repository for service tests.
type stubUserRepo struct {
	users  []*domain.User
	lastID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}

func (r *stubUserRepo) Insert(_ context.Context, user *domain.User) (*domain.User, error) {
	r.lastID++
	c := cloneUser(user)
	c.ID = r.lastID
	r.users = append(r.users, c)
	return cloneUser(c), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int) (*domain.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func (r *stubUserRepo) Replace(_ context.Context, user *domain.User) (*domain.User, error) {
	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = cloneUser(user)
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) RemoveByID(_ context.Context, id int) (bool, error) {
	for i, u := range r.users {
		if u.ID == id {
			r.users = append(r.users[:i], r.users[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (r *stubUserRepo) CountByType(_ context.Context, t domain.UserType) (int, error) {
	n := 0
	for _, u := range r.users {
		if u.Type == t {
			n++
		}
	}
	return n, nil
}

// seed inserts a user directly, bypassing the service under test.
func (r *stubUserRepo) seed(email string, typ domain.UserType, passHash string) *domain.User {
	u, _ := r.Insert(context.Background(), &domain.User{
		Email:    email,
		Name:     "User " + email,
		Type:     typ,
		PassHash: passHash,
	})
	return u
}

// fakeHasher is a deterministic stand-in for the bcrypt collaborator.
type fakeHasher struct {
	failHash bool
}

func (f *fakeHasher) Hash(plain string) (string, error) {
	if f.failHash {
		return "", errors.New("hasher unavailable")
	}
	return "h:" + plain, nil
}

func (f *fakeHasher) Verify(plain, hash string) bool {
	return hash == "h:"+plain
}

// slowHasher stalls between a mutation's duplicate check and its
// insert, widening the window a racing mutation would need to slip
// through if the check-then-write were not serialized.
type slowHasher struct {
	delay time.Duration
}

func (s *slowHasher) Hash(plain string) (string, error) {
	time.Sleep(s.delay)
	return "h:" + plain, nil
}

func (s *slowHasher) Verify(plain, hash string) bool {
	return hash == "h:"+plain
}

// fakeIssuer mints predictable tokens.
type fakeIssuer struct {
	failIssue bool
}

func (f *fakeIssuer) Issue(user *domain.User) (string, error) {
	if f.failIssue {
		return "", errors.New("signer unavailable")
	}
	return fmt.Sprintf("token-%d", user.ID), nil
}
