package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/minimarket/marketplace-api/internal/api/metrics"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for catalog operations.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /products. The authenticated principal becomes the
// owner; the payload cannot set ownership or approval.
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createProductRequest  true  "Product details"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
	}, principal)
	if err != nil {
		return err
	}

	metrics.ProductsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, product)
}

// Update handles PUT /products/:id. Owner only; partial-field semantics.
//
// @Summary      Update a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Product id"
// @Param        body  body      updateProductRequest  true  "Fields to change"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id} [put]
func (h *ProductHandler) Update(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req updateProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Description: req.Description,
		Quantity:    req.Quantity,
	}, principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /products/:id. Owner only; returns the deleted
// product.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	product, err := h.service.Delete(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// Approve handles PUT /products/:id/approve. Admin only.
//
// @Summary      Approve or revoke approval of a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      approveProductRequest  true  "Approval state"
// @Success      200   {object}  domain.Product
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /products/{id}/approve [put]
func (h *ProductHandler) Approve(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	var req approveProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Approve(c.Request().Context(), c.Param("id"), *req.IsApproved, principal)
	if err != nil {
		return err
	}

	metrics.ProductApprovalsTotal.WithLabelValues(strconv.FormatBool(product.IsApproved)).Inc()
	return c.JSON(http.StatusOK, product)
}

// Get handles GET /products/:id. Works for anonymous callers; visibility is
// decided by the product policy.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	principal := ctxOptionalPrincipal(c)

	product, err := h.service.Get(c.Request().Context(), c.Param("id"), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, product)
}

// List handles GET /products. Anonymous callers see approved products;
// authenticated users additionally see their own; admins see everything and
// may narrow with ?approved=true|false.
//
// @Summary      List products visible to the caller
// @Tags         products
// @Produce      json
// @Param        approved  query     bool  false  "Filter by approval state"
// @Success      200       {array}   domain.Product
// @Router       /products [get]
func (h *ProductHandler) List(c echo.Context) error {
	principal := ctxOptionalPrincipal(c)

	var approved *bool
	if raw := c.QueryParam("approved"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
		}
		approved = &v
	}

	products, err := h.service.List(c.Request().Context(), ports.ListProductsInput{
		Principal: principal,
		Approved:  approved,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}

// ListMine handles GET /products/mine — the caller's own products, approved
// or not.
//
// @Summary      List the caller's own products
// @Tags         products
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Router       /products/mine [get]
func (h *ProductHandler) ListMine(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	products, err := h.service.ListByOwner(c.Request().Context(), principal)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, products)
}
