package ports

import (
	"context"

	"github.com/sps-group/user-api/internal/core/domain"
)

// UpdateInput is a selective patch: only non-nil fields are applied.
type UpdateInput struct {
	Email    *string
	Name     *string
	Password *string
	Type     *domain.UserType
}

// UpdateResult carries the updated user plus a signal that the actor's
// own token no longer matches their privileges (self-demotion) and the
// boundary should force re-authentication.
type UpdateResult struct {
	User             *domain.User
	TokenInvalidated bool
}

type UserService interface {
	Create(ctx context.Context, actorType domain.UserType, email, name, password string, userType domain.UserType) (*domain.User, error)
	Get(ctx context.Context, id int) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Update(ctx context.Context, actorID int, actorType domain.UserType, targetID int, in UpdateInput) (*UpdateResult, error)
	Delete(ctx context.Context, actorID int, actorType domain.UserType, targetID int) error
	EmailInUse(ctx context.Context, email string, excludeID int) (bool, error)
	AdminCount(ctx context.Context) (int, error)
}
