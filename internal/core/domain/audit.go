package domain

import "time"

// AuditAction identifies what an auth event records.
type AuditAction string

const (
	AuditLogin        AuditAction = "login"
	AuditLoginFailed  AuditAction = "login_failed"
	AuditRegister     AuditAction = "register"
	AuditRoleChange   AuditAction = "role_change"
	AuditAccessDenied AuditAction = "access_denied"
)

// AuthEvent is a single entry in the audit trail. Subject is the normalized
// email the event concerns; it doubles as the dispatcher shard key so events
// for one subject are persisted in order.
type AuthEvent struct {
	Subject    string      `json:"subject"`
	Action     AuditAction `json:"action"`
	Detail     string      `json:"detail,omitempty"`
	OccurredAt time.Time   `json:"occurred_at"`
}
