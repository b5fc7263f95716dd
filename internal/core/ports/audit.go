package ports

import (
	"context"

	"github.com/estatehub/auth-service/internal/core/domain"
)

// AuditRepository persists auth events.
type AuditRepository interface {
	Insert(ctx context.Context, event *domain.AuthEvent) error
}

// AuditRecorder accepts auth events for asynchronous persistence. Record must
// never block the request path.
type AuditRecorder interface {
	Record(event domain.AuthEvent)
}
