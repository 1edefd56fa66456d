package domain

// Principal is the authenticated identity resolved from a verified token for
// the duration of one request. A nil *Principal means an anonymous caller.
type Principal struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// IsAdmin reports whether the principal carries the admin role.
// Safe to call on a nil principal.
func (p *Principal) IsAdmin() bool {
	return p != nil && p.Role == RoleAdmin
}

// ProductAction enumerates the operations the product policy can authorize.
type ProductAction string

const (
	ActionView    ProductAction = "view"
	ActionUpdate  ProductAction = "update"
	ActionDelete  ProductAction = "delete"
	ActionApprove ProductAction = "approve"
)

// AuthorizeProduct is the single authorization predicate for product access.
// It is pure: no storage, no transport, just the decision.
//
// View: admins see everything; owners see their own products regardless of
// approval; anyone else (including anonymous) sees only approved products.
// Update/Delete: owner only (admins get no special mutation rights).
// Approve: admin only.
func AuthorizeProduct(p *Principal, product *Product, action ProductAction) error {
	switch action {
	case ActionView:
		if p.IsAdmin() {
			return nil
		}
		if p != nil && p.ID == product.OwnerID {
			return nil
		}
		if product.IsApproved {
			return nil
		}
		return ErrForbidden

	case ActionUpdate, ActionDelete:
		if p != nil && p.ID == product.OwnerID {
			return nil
		}
		return ErrForbidden

	case ActionApprove:
		if p.IsAdmin() {
			return nil
		}
		return ErrForbidden
	}

	return ErrForbidden
}

// FilterVisible applies the view predicate to a collection, returning the
// subset of products the principal may see. Order is preserved.
func FilterVisible(p *Principal, products []*Product) []*Product {
	visible := make([]*Product, 0, len(products))
	for _, product := range products {
		if AuthorizeProduct(p, product, ActionView) == nil {
			visible = append(visible, product)
		}
	}
	return visible
}
