package service

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// TokenVerifier resolves bearer tokens to principals. Beyond signature and
// expiry, it checks the subject against current stored state so that a ban
// takes effect immediately, even for tokens issued before the ban.
type TokenVerifier struct {
	repo      ports.UserRepository
	jwtSecret string
}

func NewTokenVerifier(repo ports.UserRepository, jwtSecret string) *TokenVerifier {
	return &TokenVerifier{repo: repo, jwtSecret: jwtSecret}
}

// Verify parses and validates the token, then looks up the subject user.
// Returns domain.ErrInvalidCredentials for a malformed, mis-signed, or
// expired token, domain.ErrUserNotFound when the subject no longer exists,
// and domain.ErrUserBanned when the subject is banned.
func (v *TokenVerifier) Verify(ctx context.Context, token string) (*domain.Principal, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(v.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidCredentials
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil, domain.ErrInvalidCredentials
	}

	user, err := v.repo.FindByID(ctx, sub)
	if err != nil {
		return nil, err
	}
	if user.IsBanned {
		return nil, domain.ErrUserBanned
	}

	name, _ := claims["name"].(string)
	role, _ := claims["role"].(string)
	return &domain.Principal{ID: sub, Name: name, Role: role}, nil
}
