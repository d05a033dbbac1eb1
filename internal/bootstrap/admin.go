// Package bootstrap seeds the initial administrator account.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sps-group/user-api/internal/core/domain"
	"github.com/sps-group/user-api/internal/core/ports"
)

// EnsureAdmin creates the seed administrator when no admin account
// exists. It is idempotent: a second call, or a start against a store
// that already holds an admin, does nothing. The system can never lock
// itself out of administration on a fresh start.
func EnsureAdmin(ctx context.Context, users ports.UserService, email, name, password string, logger zerolog.Logger) error {
	count, err := users.AdminCount(ctx)
	if err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	admin, err := users.Create(ctx, domain.TypeAdmin, email, name, password, domain.TypeAdmin)
	if err != nil {
		return fmt.Errorf("create seed admin: %w", err)
	}

	logger.Info().Int("user_id", admin.ID).Str("email", admin.Email).Msg("seed administrator created")
	return nil
}
