package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// RequireRole gates a route to the given roles. Must run after Auth.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity, ok := c.Get(IdentityKey).(domain.Identity)
			if !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[identity.Role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
