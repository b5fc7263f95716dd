package ports

import (
	"context"

	"github.com/estatehub/auth-service/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Emails passed in
// are already normalized by the service layer.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)

	// Create persists a new user. Uniqueness of the email is enforced
	// atomically by the store; the loser of a race gets domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)

	// UpdateRole replaces the role of an existing user and returns the
	// updated record, or domain.ErrUserNotFound.
	UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error)
}
