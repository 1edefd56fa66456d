package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// ProductService implements the catalog use cases. All authorization goes
// through domain.AuthorizeProduct so the decision logic stays in one place.
type ProductService struct {
	repo  ports.ProductRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, audit ports.AuditRecorder, log zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, audit: audit, log: log}
}

// Create inserts a new product owned by the authenticated principal.
// Products start unapproved.
func (s *ProductService) Create(ctx context.Context, input ports.CreateProductInput, owner *domain.Principal) (*domain.Product, error) {
	now := time.Now().UTC()
	product := &domain.Product{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Quantity:    input.Quantity,
		IsApproved:  false,
		OwnerID:     owner.ID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		return nil, fmt.Errorf("create product: %w", err)
	}

	s.log.Info().Str("product_id", created.ID).Str("owner_id", owner.ID).Msg("product created")
	return created, nil
}

// Update applies a partial update. Only the owner may update; unsupplied
// fields keep their prior values.
func (s *ProductService) Update(ctx context.Context, id string, update ports.ProductUpdate, requester *domain.Principal) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeProduct(requester, product, domain.ActionUpdate); err != nil {
		return nil, err
	}

	return s.repo.Update(ctx, id, update)
}

// Delete removes a product. Only the owner may delete. The deleted document
// is returned.
func (s *ProductService) Delete(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeProduct(requester, product, domain.ActionDelete); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", id).Str("owner_id", deleted.OwnerID).Msg("product deleted")
	return deleted, nil
}

// Approve sets the approval flag. Admin only; the flag is the only field
// touched.
func (s *ProductService) Approve(ctx context.Context, id string, approved bool, actor *domain.Principal) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeProduct(actor, product, domain.ActionApprove); err != nil {
		return nil, err
	}

	updated, err := s.repo.SetApproved(ctx, id, approved)
	if err != nil {
		return nil, err
	}

	action := domain.AuditProductApproved
	if !approved {
		action = domain.AuditProductRevoked
	}
	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{
			Action:    action,
			ActorID:   actor.ID,
			EntityID:  id,
			Timestamp: time.Now().UTC(),
		})
	}

	s.log.Info().Str("product_id", id).Bool("approved", approved).Msg("product approval changed")
	return updated, nil
}

// Get fetches a single product, gated by the view policy.
func (s *ProductService) Get(ctx context.Context, id string, requester *domain.Principal) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := domain.AuthorizeProduct(requester, product, domain.ActionView); err != nil {
		return nil, err
	}
	return product, nil
}

// List returns the products visible to the caller. Admins see the full set
// (optionally narrowed by the approval filter); everyone else gets the
// per-item view predicate applied.
func (s *ProductService) List(ctx context.Context, input ports.ListProductsInput) ([]*domain.Product, error) {
	products, err := s.repo.List(ctx, ports.ListProductsFilter{Approved: input.Approved})
	if err != nil {
		return nil, err
	}

	if input.Principal.IsAdmin() {
		return products, nil
	}
	return domain.FilterVisible(input.Principal, products), nil
}

// ListByOwner returns the caller's own products, approved or not.
func (s *ProductService) ListByOwner(ctx context.Context, owner *domain.Principal) ([]*domain.Product, error) {
	return s.repo.List(ctx, ports.ListProductsFilter{OwnerID: owner.ID})
}
