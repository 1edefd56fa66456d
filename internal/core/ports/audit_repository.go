package ports

import (
	"context"

	"github.com/minimarket/marketplace-api/internal/core/domain"
)

// AuditRepository persists audit entries to the audit_events collection.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
}

// AuditRecorder is the fire-and-forget side the services talk to. The queue
// dispatcher implements it; Record must never block the request path beyond
// channel buffering.
type AuditRecorder interface {
	Record(entry domain.AuditEntry)
}
