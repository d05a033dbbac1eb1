package ports

import (
	"context"

	"github.com/sps-group/user-api/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
