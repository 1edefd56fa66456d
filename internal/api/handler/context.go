package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/minimarket/marketplace-api/internal/api/middleware"
	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// ctxPrincipal extracts the principal injected by the Authenticate middleware.
// Its presence proves the middleware ran; on routes that require auth a
// missing principal is a wiring error and rejected with 401.
func ctxPrincipal(c echo.Context) (*domain.Principal, error) {
	principal, _ := c.Get(appmiddleware.PrincipalKey).(*domain.Principal)
	if principal == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return principal, nil
}

// ctxOptionalPrincipal returns the principal when one was resolved and nil for
// anonymous callers.
func ctxOptionalPrincipal(c echo.Context) *domain.Principal {
	principal, _ := c.Get(appmiddleware.PrincipalKey).(*domain.Principal)
	return principal
}
