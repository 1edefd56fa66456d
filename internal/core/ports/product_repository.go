package ports

import (
	"context"

	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// ProductUpdate carries the partial-update fields for a product. Nil fields
// are left untouched; owner and approval are never writable through updates.
type ProductUpdate struct {
	Name        *string
	Price       *float64
	Description *string
	Quantity    *int
}

// ListProductsFilter narrows a product listing. Zero values mean no filter.
type ListProductsFilter struct {
	Approved *bool  // nil = any approval state
	OwnerID  string // empty = any owner
}

// ProductRepository defines persistence operations for catalog products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// Update applies the non-nil fields and returns the updated product.
	Update(ctx context.Context, id string, update ProductUpdate) (*domain.Product, error)
	// Delete removes the product and returns the deleted document.
	Delete(ctx context.Context, id string) (*domain.Product, error)
	// SetApproved flips the approval flag and returns the updated product.
	SetApproved(ctx context.Context, id string, approved bool) (*domain.Product, error)
	List(ctx context.Context, filter ListProductsFilter) ([]*domain.Product, error)
}
