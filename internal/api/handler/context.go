package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/api/middleware"
	"github.com/medcore/healthcare-api/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware.
// A missing identity means the middleware did not run; fail closed with 401.
func ctxIdentity(c echo.Context) (domain.Identity, error) {
	identity, ok := c.Get(middleware.IdentityKey).(domain.Identity)
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return identity, nil
}

// pathID parses a numeric path parameter.
func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return uint(id), nil
}
