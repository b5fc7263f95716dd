package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials is returned for any rejected login. Unknown user
	// and wrong password are deliberately indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthenticated covers missing, malformed and expired tokens, and
	// tokens whose subject no longer resolves to a user.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrTokenExpired and ErrTokenMalformed are codec-internal; callers see
	// them as ErrUnauthenticated.
	ErrTokenExpired   = errors.New("token expired")
	ErrTokenMalformed = errors.New("token malformed")

	ErrForbidden    = errors.New("forbidden")
	ErrUserExists   = errors.New("user already exists")
	ErrUserNotFound = errors.New("user not found")
	ErrInvalidRole  = errors.New("invalid role")
)

// ForbiddenError is returned when a valid identity lacks the role required by
// an endpoint. The message enumerates the allowed roles so a denied caller can
// tell what access the route demands.
type ForbiddenError struct {
	Allowed []Role
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("access denied, required roles: %s", RoleNames(e.Allowed))
}

// Is makes errors.Is(err, ErrForbidden) match a *ForbiddenError.
func (e *ForbiddenError) Is(target error) bool {
	return target == ErrForbidden
}
