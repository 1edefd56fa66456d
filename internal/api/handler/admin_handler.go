package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/marketplace-api/internal/api/metrics"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// AdminHandler exposes the admin-only user directory operations. All routes
// are guarded by the Authenticate and RBAC(admin) middleware.
type AdminHandler struct {
	adminService ports.AdminService
}

func NewAdminHandler(adminService ports.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// Find looks up a user by email.
//
// @Summary      Find a user by email
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      findUserRequest  true  "Email to look up"
// @Success      200   {object}  domain.User
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /admin/find [post]
func (h *AdminHandler) Find(c echo.Context) error {
	var req findUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.adminService.FindUserByEmail(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("find").Inc()
	return c.JSON(http.StatusOK, user)
}

// Ban flags a user as banned. Self-ban is rejected.
//
// @Summary      Ban a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/ban/{id} [post]
func (h *AdminHandler) Ban(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.adminService.Ban(c.Request().Context(), c.Param("id"), principal.ID)
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("ban").Inc()
	return c.JSON(http.StatusOK, user)
}

// Unban clears a user's banned flag. Self-unban is rejected.
//
// @Summary      Unban a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Target user id"
// @Success      200  {object}  domain.User
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/unban/{id} [post]
func (h *AdminHandler) Unban(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	user, err := h.adminService.Unban(c.Request().Context(), c.Param("id"), principal.ID)
	if err != nil {
		return err
	}

	metrics.AdminActionsTotal.WithLabelValues("unban").Inc()
	return c.JSON(http.StatusOK, user)
}
