package domain

import "time"

// Audit actions recorded for privileged operations.
const (
	AuditUserBanned      = "user.banned"
	AuditUserUnbanned    = "user.unbanned"
	AuditProductApproved = "product.approved"
	AuditProductRevoked  = "product.approval_revoked"
)

// AuditEntry records a single privileged action for the audit trail.
type AuditEntry struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	EntityID  string    `json:"entity_id"`
	Detail    string    `json:"detail,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}
