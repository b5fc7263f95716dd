package ports

import (
	"context"

	"github.com/estatehub/auth-service/internal/core/domain"
)

// AuthService is the outward-facing surface of the auth core.
type AuthService interface {
	// Login verifies credentials and mints a bearer token. Any rejection is
	// domain.ErrInvalidCredentials regardless of whether the user exists.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)

	// Register creates a user with the default role. No token is issued;
	// registration and login are separate steps.
	Register(ctx context.Context, email, password string) (*domain.User, error)

	// UpdateRole changes an existing user's role. Admin gating is the
	// caller's responsibility.
	UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)

	// Authenticate resolves a bearer token to its user.
	Authenticate(ctx context.Context, token string) (*domain.User, error)

	// Authorize resolves a bearer token and enforces membership in the
	// allowed role set. An empty set denies every valid user.
	Authorize(ctx context.Context, token string, allowed ...domain.Role) (*domain.User, error)
}
