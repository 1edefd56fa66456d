package ports

import (
	"context"

	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// AdminService covers the admin-only user directory operations. The acting
// admin's id is passed explicitly so the self-action check needs no ambient
// request state.
type AdminService interface {
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)
	Ban(ctx context.Context, targetID, actorID string) (*domain.User, error)
	Unban(ctx context.Context, targetID, actorID string) (*domain.User, error)
}
