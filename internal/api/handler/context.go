package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sps-group/user-api/internal/api/middleware"
)

// ctxPrincipal extracts the principal injected by the session guard and
// fast-fails before any service call: a missing principal means the
// guard never ran on this route, which is a wiring bug surfaced as 401
// rather than a nil dereference deeper down.
func ctxPrincipal(c echo.Context) (middleware.Principal, error) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		return middleware.Principal{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return p, nil
}
