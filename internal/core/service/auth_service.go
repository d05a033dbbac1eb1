package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/sps-group/user-api/internal/core/domain"
	"github.com/sps-group/user-api/internal/core/ports"
)

// AuthService implements self-registration and login. Registration
// funnels through the user service so its duplicate-email check and
// insert run under the same lock as every other store mutation.
type AuthService struct {
	repo   ports.UserRepository
	users  ports.UserService
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	logger zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, users ports.UserService, hasher ports.PasswordHasher, tokens ports.TokenIssuer, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, users: users, hasher: hasher, tokens: tokens, logger: logger}
}

// Register creates a new account of type user. Admin accounts can only
// be created through the user service by an administrator.
func (s *AuthService) Register(ctx context.Context, email, name, password string) (*domain.User, error) {
	user, err := s.users.Create(ctx, domain.TypeUser, email, name, password, domain.TypeUser)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int("user_id", user.ID).Str("email", user.Email).Msg("user registered")
	return user, nil
}

// Login authenticates by email and password and issues a bearer token.
// Unknown email and wrong password fail identically so callers cannot
// enumerate accounts.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, domain.ErrInvalidCredentials
	}

	if !s.hasher.Verify(password, user.PassHash) {
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.logger.Info().Int("user_id", user.ID).Msg("user logged in")
	return token, user, nil
}
