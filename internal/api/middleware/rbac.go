package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/marketplace-api/internal/api/metrics"
	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// RBAC enforces role-based access control. It must run after Authenticate.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, _ := c.Get(PrincipalKey).(*domain.Principal)
			if principal == nil {
				metrics.AuthDenialsTotal.WithLabelValues("forbidden_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			if _, ok := allowed[principal.Role]; !ok {
				metrics.AuthDenialsTotal.WithLabelValues("forbidden_role").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
