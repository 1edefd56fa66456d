package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	appmiddleware "github.com/minimarket/marketplace-api/internal/api/middleware"
	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

type stubProductService struct {
	createFn  func(ctx context.Context, input ports.CreateProductInput, owner *domain.Principal) (*domain.Product, error)
	updateFn  func(ctx context.Context, id string, update ports.ProductUpdate, requester *domain.Principal) (*domain.Product, error)
	deleteFn  func(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error)
	approveFn func(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error)
	getFn     func(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error)
	listFn    func(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error)
	listOwnFn func(ctx context.Context, owner *domain.Principal) ([]*domain.Product, error)
}

func (s *stubProductService) Create(ctx context.Context, input ports.CreateProductInput, owner *domain.Principal) (*domain.Product, error) {
	return s.createFn(ctx, input, owner)
}
func (s *stubProductService) Update(ctx context.Context, id string, update ports.ProductUpdate, requester *domain.Principal) (*domain.Product, error) {
	return s.updateFn(ctx, id, update, requester)
}
func (s *stubProductService) Delete(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error) {
	return s.deleteFn(ctx, id, requester)
}
func (s *stubProductService) Approve(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error) {
	return s.approveFn(ctx, id, approved, actor)
}
func (s *stubProductService) Get(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error) {
	return s.getFn(ctx, id, requester)
}
func (s *stubProductService) List(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
	return s.listFn(ctx, input)
}
func (s *stubProductService) ListByOwner(ctx context.Context, owner *domain.Principal) ([]*domain.Product, error) {
	return s.listOwnFn(ctx, owner)
}

func TestProductHandler_Create_Success(t *testing.T) {
	owner := &domain.Principal{ID: "user_1", Role: domain.RoleUser}
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput, p *domain.Principal) (*domain.Product, error) {
			if p.ID != "user_1" {
				t.Fatalf("unexpected owner: %+v", p)
			}
			if input.Name != "Widget" || input.Price != 9.99 || input.Quantity != 3 {
				t.Fatalf("unexpected input: %+v", input)
			}
			return &domain.Product{ID: "prod_1", Name: input.Name, OwnerID: p.ID}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/products",
		`{"name":"Widget","price":9.99,"quantity":3}`)
	c.Set(appmiddleware.PrincipalKey, owner)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["owner_id"] != "user_1" {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestProductHandler_Create_Unauthenticated(t *testing.T) {
	stub := &stubProductService{
		createFn: func(ctx context.Context, input ports.CreateProductInput, p *domain.Principal) (*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/products", `{"name":"Widget"}`)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestProductHandler_Update_PartialBody(t *testing.T) {
	owner := &domain.Principal{ID: "user_1", Role: domain.RoleUser}
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, update ports.ProductUpdate, p *domain.Principal) (*domain.Product, error) {
			if id != "prod_1" {
				t.Fatalf("unexpected id: %s", id)
			}
			if update.Price == nil || *update.Price != 19.99 {
				t.Fatalf("expected price update, got %+v", update)
			}
			if update.Name != nil || update.Description != nil || update.Quantity != nil {
				t.Fatalf("absent fields must stay nil: %+v", update)
			}
			return &domain.Product{ID: id, Price: *update.Price, OwnerID: p.ID}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/products/prod_1", `{"price":19.99}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set(appmiddleware.PrincipalKey, owner)

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Update_Forbidden(t *testing.T) {
	stranger := &domain.Principal{ID: "user_2", Role: domain.RoleUser}
	stub := &stubProductService{
		updateFn: func(ctx context.Context, id string, update ports.ProductUpdate, p *domain.Principal) (*domain.Product, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodPut, "/products/prod_1", `{"price":19.99}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set(appmiddleware.PrincipalKey, stranger)

	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden passed through, got %v", err)
	}
}

func TestProductHandler_Approve(t *testing.T) {
	admin := &domain.Principal{ID: "admin_1", Role: domain.RoleAdmin}
	stub := &stubProductService{
		approveFn: func(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error) {
			if !approved {
				t.Fatalf("expected approved=true")
			}
			return &domain.Product{ID: id, IsApproved: approved}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodPut, "/products/prod_1/approve", `{"is_approved":true}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set(appmiddleware.PrincipalKey, admin)

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Approve_FalseIsValid(t *testing.T) {
	admin := &domain.Principal{ID: "admin_1", Role: domain.RoleAdmin}
	stub := &stubProductService{
		approveFn: func(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error) {
			if approved {
				t.Fatalf("expected approved=false")
			}
			return &domain.Product{ID: id}, nil
		},
	}
	h := NewProductHandler(stub)

	// is_approved:false must pass validation; only a missing field is invalid.
	c, rec := newTestContext(t, http.MethodPut, "/products/prod_1/approve", `{"is_approved":false}`)
	c.SetParamNames("id")
	c.SetParamValues("prod_1")
	c.Set(appmiddleware.PrincipalKey, admin)

	if err := h.Approve(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_Get_Anonymous(t *testing.T) {
	stub := &stubProductService{
		getFn: func(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error) {
			if requester != nil {
				t.Fatalf("expected anonymous requester")
			}
			return &domain.Product{ID: id, IsApproved: true}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products/prod_1", "")
	c.SetParamNames("id")
	c.SetParamValues("prod_1")

	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_List_ApprovedFilter(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
			if input.Approved == nil || *input.Approved != true {
				t.Fatalf("expected approved=true filter, got %+v", input.Approved)
			}
			return []*domain.Product{{ID: "prod_1", IsApproved: true}}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products?approved=true", "")

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProductHandler_List_BadApprovedParam(t *testing.T) {
	stub := &stubProductService{
		listFn: func(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewProductHandler(stub)

	c, _ := newTestContext(t, http.MethodGet, "/products?approved=maybe", "")

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestProductHandler_ListMine(t *testing.T) {
	owner := &domain.Principal{ID: "user_1", Role: domain.RoleUser}
	stub := &stubProductService{
		listOwnFn: func(ctx context.Context, p *domain.Principal) ([]*domain.Product, error) {
			if p.ID != "user_1" {
				t.Fatalf("unexpected owner: %+v", p)
			}
			return []*domain.Product{{ID: "prod_1", OwnerID: p.ID}}, nil
		},
	}
	h := NewProductHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/products/mine", "")
	c.Set(appmiddleware.PrincipalKey, owner)

	if err := h.ListMine(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
