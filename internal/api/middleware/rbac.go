package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/auth-service/internal/core/domain"
	"github.com/estatehub/auth-service/internal/core/ports"
)

// RBAC enforces exact role-set membership for the user resolved by Auth.
// Each route declares its own allowed set; denial messages enumerate it and
// every denial lands in the audit trail.
func RBAC(audit ports.AuditRecorder, allowedRoles ...domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user := CurrentUser(c)
			if user == nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
			}
			if !user.Role.In(allowedRoles) {
				if audit != nil {
					audit.Record(domain.AuthEvent{
						Subject:    user.Email,
						Action:     domain.AuditAccessDenied,
						Detail:     domain.RoleNames(allowedRoles),
						OccurredAt: time.Now().UTC(),
					})
				}
				return &domain.ForbiddenError{Allowed: allowedRoles}
			}
			return next(c)
		}
	}
}
