package ports

import (
	"context"

	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// CreateProductInput carries the fields a user supplies when listing a
// product. The owner is taken from the authenticated principal, never from
// the payload.
type CreateProductInput struct {
	Name        string
	Price       float64
	Description string
	Quantity    int
}

// ListProductsInput carries the caller identity and optional filters for the
// listing endpoint. Approved narrows by approval state; only admins may use
// it to reach beyond their visible set.
type ListProductsInput struct {
	Principal *domain.Principal
	Approved  *bool
}

// ProductService defines the catalog use cases. Every operation takes the
// requesting principal explicitly; authorization is decided by the product
// policy in the domain package.
type ProductService interface {
	Create(ctx context.Context, input CreateProductInput, owner *domain.Principal) (*domain.Product, error)
	Update(ctx context.Context, id string, update ProductUpdate, requester *domain.Principal) (*domain.Product, error)
	Delete(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error)
	Approve(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error)
	Get(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error)
	List(ctx context.Context, input ListProductsInput) ([]*domain.Product, error)
	ListByOwner(ctx context.Context, owner *domain.Principal) ([]*domain.Product, error)
}
