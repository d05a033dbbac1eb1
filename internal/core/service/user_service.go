package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/sps-group/user-api/internal/core/domain"
	"github.com/sps-group/user-api/internal/core/ports"
)

// UserService implements account CRUD and the privilege-integrity rules
// around it: admin-gated type changes and the last-administrator guard.
//
// Create, Update and Delete are check-then-write sequences whose
// decisions depend on state read moments earlier (the admin count above
// all), so mu makes each mutation a single logical transaction. Without
// it two concurrent demotions of two different admins could each pass
// the count check and together empty the admin set. Registrations from
// the auth service funnel through Create, so this one lock serializes
// every mutation of the store.
type UserService struct {
	repo   ports.UserRepository
	hasher ports.PasswordHasher
	logger zerolog.Logger

	mu sync.Mutex
}

func NewUserService(repo ports.UserRepository, hasher ports.PasswordHasher, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, hasher: hasher, logger: logger}
}

// Create adds an account on behalf of actorType. Creating an admin
// account requires the actor to be an admin.
func (s *UserService) Create(ctx context.Context, actorType domain.UserType, email, name, password string, userType domain.UserType) (*domain.User, error) {
	if userType == "" {
		userType = domain.TypeUser
	}
	if userType == domain.TypeAdmin && actorType != domain.TypeAdmin {
		return nil, domain.ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.repo.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repo.Insert(ctx, &domain.User{
		Email:    email,
		Name:     name,
		Type:     userType,
		PassHash: hash,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", created.ID).Str("type", string(created.Type)).Msg("user created")
	return created, nil
}

func (s *UserService) Get(ctx context.Context, id int) (*domain.User, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}

// Update applies a selective patch to the target account.
//
// Decision order: target exists, actor authorized (self or admin),
// email unique, type change admin-gated, last-admin guard. Nothing is
// written until every check has passed.
func (s *UserService) Update(ctx context.Context, actorID int, actorType domain.UserType, targetID int, in ports.UpdateInput) (*ports.UpdateResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return nil, err
	}

	if actorType != domain.TypeAdmin && actorID != targetID {
		return nil, domain.ErrForbidden
	}

	if in.Email != nil {
		if other, err := s.repo.FindByEmail(ctx, *in.Email); err == nil && other.ID != targetID {
			return nil, domain.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
			return nil, err
		}
	}

	demotion := false
	if in.Type != nil {
		if actorType != domain.TypeAdmin {
			return nil, domain.ErrForbidden
		}
		demotion = target.IsAdmin() && *in.Type != domain.TypeAdmin
		if demotion {
			admins, err := s.repo.CountByType(ctx, domain.TypeAdmin)
			if err != nil {
				return nil, err
			}
			if admins <= 1 {
				return nil, domain.ErrLastAdmin
			}
		}
	}

	updated := *target
	if in.Email != nil {
		updated.Email = *in.Email
	}
	if in.Name != nil {
		updated.Name = *in.Name
	}
	if in.Type != nil {
		updated.Type = *in.Type
	}
	if in.Password != nil {
		hash, err := s.hasher.Hash(*in.Password)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		updated.PassHash = hash
	}

	persisted, err := s.repo.Replace(ctx, &updated)
	if err != nil {
		return nil, err
	}

	// A self-demoted admin is still holding a token that claims admin
	// privileges; the boundary uses this flag to force a fresh login.
	invalidated := demotion && actorID == targetID

	s.logger.Info().
		Int("user_id", persisted.ID).
		Int("actor_id", actorID).
		Bool("token_invalidated", invalidated).
		Msg("user updated")

	return &ports.UpdateResult{User: persisted, TokenInvalidated: invalidated}, nil
}

// Delete removes the target account. Self-deletion is always allowed
// except for the last administrator; deleting another account requires
// admin privileges.
func (s *UserService) Delete(ctx context.Context, actorID int, actorType domain.UserType, targetID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	target, err := s.repo.FindByID(ctx, targetID)
	if err != nil {
		return err
	}

	if actorID == targetID {
		if target.IsAdmin() {
			admins, err := s.repo.CountByType(ctx, domain.TypeAdmin)
			if err != nil {
				return err
			}
			if admins <= 1 {
				return domain.ErrLastAdmin
			}
		}
	} else if actorType != domain.TypeAdmin {
		return domain.ErrForbidden
	}

	removed, err := s.repo.RemoveByID(ctx, targetID)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrUserNotFound
	}

	s.logger.Info().Int("user_id", targetID).Int("actor_id", actorID).Msg("user deleted")
	return nil
}

// EmailInUse reports whether email resolves to an account other than
// excludeID. Pass 0 to consider every account.
func (s *UserService) EmailInUse(ctx context.Context, email string, excludeID int) (bool, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrUserNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.ID != excludeID, nil
}

func (s *UserService) AdminCount(ctx context.Context) (int, error) {
	return s.repo.CountByType(ctx, domain.TypeAdmin)
}
