package ports

import "github.com/sps-group/user-api/internal/core/domain"

// PasswordHasher is the one-way credential hashing collaborator.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) bool
}

// TokenClaims is the payload embedded in an access token at issuance.
// The Type field reflects the privilege the account held when the token
// was signed; the session guard re-checks it against the live account.
type TokenClaims struct {
	UserID int
	Email  string
	Type   domain.UserType
}

// TokenIssuer signs a claims payload into a bearer token.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
}

// TokenVerifier checks signature and expiry and extracts the claims.
// It returns domain.ErrInvalidToken on any verification failure.
type TokenVerifier interface {
	Verify(token string) (*TokenClaims, error)
}
