package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/marketplace-api/internal/api/metrics"
	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// PrincipalKey is the echo context key the middleware stores the resolved
// principal under.
const PrincipalKey = "principal"

// Authenticate requires a valid bearer token and injects the resolved
// principal into the context. Banned or deleted subjects are rejected even
// when their token is otherwise valid.
func Authenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing or invalid authorization header")
			}

			principal, err := verifier.Verify(c.Request().Context(), token)
			if err != nil {
				switch {
				case errors.Is(err, domain.ErrUserBanned):
					metrics.AuthDenialsTotal.WithLabelValues("banned").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "user is banned")
				case errors.Is(err, domain.ErrUserNotFound):
					metrics.AuthDenialsTotal.WithLabelValues("user_not_found").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown token subject")
				default:
					metrics.AuthDenialsTotal.WithLabelValues("invalid_token").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
				}
			}

			c.Set(PrincipalKey, principal)
			return next(c)
		}
	}
}

// OptionalAuthenticate resolves a principal when a valid bearer token is
// present and proceeds anonymously otherwise. Verification failures are not
// errors here: the request simply carries no principal.
func OptionalAuthenticate(verifier ports.TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, ok := bearerToken(c)
			if !ok {
				return next(c)
			}

			principal, err := verifier.Verify(c.Request().Context(), token)
			if err == nil {
				c.Set(PrincipalKey, principal)
			}
			return next(c)
		}
	}
}

func bearerToken(c echo.Context) (string, bool) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return "", false
	}
	return parts[1], true
}
