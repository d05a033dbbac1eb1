package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/sps-group/user-api/internal/api/metrics"
	"github.com/sps-group/user-api/internal/core/domain"
	"github.com/sps-group/user-api/internal/core/ports"
)

// Principal is the trusted identity attached to an authenticated
// request. Its Type comes from the freshly loaded account, never from
// the token claims.
type Principal struct {
	ID    int
	Email string
	Type  domain.UserType
}

func (p Principal) IsAdmin() bool {
	return p.Type == domain.TypeAdmin
}

const principalKey = "principal"

// PrincipalFrom extracts the principal injected by Auth.
func PrincipalFrom(c echo.Context) (Principal, bool) {
	p, ok := c.Get(principalKey).(Principal)
	return p, ok
}

// Auth is the session guard. It verifies the bearer token, re-resolves
// the account it names and rejects the request when the account is gone
// or its privilege type has drifted from the token's claim. A demoted
// admin's old token must stop granting admin capabilities even while
// its signature is still valid and unexpired.
func Auth(verifier ports.TokenVerifier, repo ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := verifier.Verify(parts[1])
			if err != nil {
				metrics.GuardRejectionsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrInvalidToken.Error())
			}

			user, err := repo.FindByID(c.Request().Context(), claims.UserID)
			if err != nil {
				// Account deleted after the token was issued.
				metrics.GuardRejectionsTotal.WithLabelValues("account_not_found").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "account no longer exists")
			}

			if user.Type != claims.Type {
				metrics.GuardRejectionsTotal.WithLabelValues("stale_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, domain.ErrStaleToken.Error())
			}

			c.Set(principalKey, Principal{
				ID:    user.ID,
				Email: user.Email,
				Type:  user.Type,
			})

			return next(c)
		}
	}
}
