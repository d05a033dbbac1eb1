package ports

import (
	"context"

	"github.com/sps-group/user-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
//
// Insert assigns the id: one greater than the current maximum, starting
// at 1. Ids are never reused within a process lifetime because removal
// does not lower the maximum of the remaining records' history.
// FindByEmail matches case-insensitively. List returns users in
// insertion order.
type UserRepository interface {
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id int) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
	Replace(ctx context.Context, user *domain.User) (*domain.User, error)
	RemoveByID(ctx context.Context, id int) (bool, error)
	CountByType(ctx context.Context, t domain.UserType) (int, error)
}
