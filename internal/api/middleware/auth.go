package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/medcore/healthcare-api/internal/core/domain"
)

// IdentityKey is the echo context key under which Auth stores the
// authenticated identity.
const IdentityKey = "identity"

// TokenValidator recovers the subject user id from a bearer token.
type TokenValidator interface {
	Validate(token string) (uint, error)
}

// IdentityLoader resolves a validated subject into a full request identity.
type IdentityLoader interface {
	FindIdentity(ctx context.Context, userID uint) (*domain.Identity, error)
}

// Auth validates the bearer token and injects the resolved identity into
// the context. Every failure collapses to 401 with a WWW-Authenticate hint;
// expired and forged tokens are not distinguished.
func Auth(tokens TokenValidator, identities IdentityLoader) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c, "invalid authorization header")
			}

			userID, err := tokens.Validate(parts[1])
			if err != nil {
				return unauthorized(c, "invalid token")
			}

			identity, err := identities.FindIdentity(c.Request().Context(), userID)
			if err != nil {
				return unauthorized(c, "user not found")
			}

			c.Set(IdentityKey, *identity)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context, msg string) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, msg)
}
