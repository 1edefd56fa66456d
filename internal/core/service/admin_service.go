package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/minimarket/marketplace-api/internal/core/domain"
	"github.com/minimarket/marketplace-api/internal/core/ports"
)

// AdminService implements the admin-only user directory operations.
type AdminService struct {
	repo  ports.UserRepository
	audit ports.AuditRecorder
	log   zerolog.Logger
}

func NewAdminService(repo ports.UserRepository, audit ports.AuditRecorder, log zerolog.Logger) *AdminService {
	return &AdminService{repo: repo, audit: audit, log: log}
}

func (s *AdminService) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.repo.FindByEmail(ctx, email)
}

// Ban flags the target user as banned. An admin cannot ban themselves.
func (s *AdminService) Ban(ctx context.Context, targetID, actorID string) (*domain.User, error) {
	return s.setBanned(ctx, targetID, actorID, true)
}

// Unban clears the banned flag. An admin cannot unban themselves.
func (s *AdminService) Unban(ctx context.Context, targetID, actorID string) (*domain.User, error) {
	return s.setBanned(ctx, targetID, actorID, false)
}

func (s *AdminService) setBanned(ctx context.Context, targetID, actorID string, banned bool) (*domain.User, error) {
	if targetID == actorID {
		return nil, domain.ErrSelfAction
	}

	user, err := s.repo.SetBanned(ctx, targetID, banned)
	if err != nil {
		return nil, err
	}

	action := domain.AuditUserBanned
	if !banned {
		action = domain.AuditUserUnbanned
	}
	if s.audit != nil {
		s.audit.Record(domain.AuditEntry{
			Action:    action,
			ActorID:   actorID,
			EntityID:  targetID,
			Timestamp: time.Now().UTC(),
		})
	}

	s.log.Info().
		Str("actor_id", actorID).
		Str("target_id", targetID).
		Bool("banned", banned).
		Msg("user ban state changed")

	return user, nil
}
