package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/estatehub/auth-service/internal/core/domain"
)

type captureRecorder struct {
	events []domain.AuthEvent
}

func (r *captureRecorder) Record(event domain.AuthEvent) {
	r.events = append(r.events, event)
}

func ctxWithUser(e *echo.Echo, role domain.Role) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &domain.User{Email: "x@example.com", Role: role})
	return c, rec
}

func TestRBAC_Allows(t *testing.T) {
	e := echo.New()
	c, rec := ctxWithUser(e, domain.RoleAdmin)
	audit := &captureRecorder{}

	called := false
	handler := RBAC(audit, domain.RoleAdmin, domain.RoleManager)(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next handler not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(audit.events) != 0 {
		t.Fatalf("granted request must not be audited as a denial: %+v", audit.events)
	}
}

func TestRBAC_Forbids(t *testing.T) {
	e := echo.New()
	c, _ := ctxWithUser(e, domain.RoleUser)

	handler := RBAC(nil, domain.RoleAdmin, domain.RoleManager)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	err := handler(c)
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if !strings.Contains(err.Error(), "admin, manager") {
		t.Fatalf("denial must enumerate allowed roles, got %q", err.Error())
	}
}

func TestRBAC_DenialRecordsAuditEvent(t *testing.T) {
	e := echo.New()
	c, _ := ctxWithUser(e, domain.RoleUser)
	audit := &captureRecorder{}

	handler := RBAC(audit, domain.RoleAdmin, domain.RoleManager)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if len(audit.events) != 1 {
		t.Fatalf("expected one audit event, got %d", len(audit.events))
	}
	event := audit.events[0]
	if event.Action != domain.AuditAccessDenied {
		t.Fatalf("expected access_denied, got %s", event.Action)
	}
	if event.Subject != "x@example.com" {
		t.Fatalf("unexpected subject: %s", event.Subject)
	}
	if !strings.Contains(event.Detail, "admin") || !strings.Contains(event.Detail, "manager") {
		t.Fatalf("event detail must carry the allowed roles, got %q", event.Detail)
	}
	if event.OccurredAt.IsZero() {
		t.Fatalf("event timestamp must be set")
	}
}

func TestRBAC_EmptyRoleSetDeniesEveryone(t *testing.T) {
	e := echo.New()
	c, _ := ctxWithUser(e, domain.RoleAdmin)
	audit := &captureRecorder{}

	handler := RBAC(audit)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}
	if len(audit.events) != 1 {
		t.Fatalf("expected the denial to be audited, got %d events", len(audit.events))
	}
}

func TestRBAC_MissingUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RBAC(nil, domain.RoleAdmin)(func(c echo.Context) error {
		t.Fatalf("should not reach next handler")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
