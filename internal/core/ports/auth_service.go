package ports

import (
	"context"

	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// AuthService implements registration and login. On success both operations
// return a signed bearer token alongside the user record.
type AuthService interface {
	Register(ctx context.Context, name, email, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// TokenVerifier resolves a bearer token to a principal. It checks the token
// signature and expiry, then the current stored user state: a missing subject
// yields domain.ErrUserNotFound, a banned subject domain.ErrUserBanned.
type TokenVerifier interface {
	Verify(ctx context.Context, token string) (*domain.Principal, error)
}
