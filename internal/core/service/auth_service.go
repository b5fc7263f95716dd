package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/estatehub/auth-service/internal/core/domain"
	"github.com/estatehub/auth-service/internal/core/ports"
)

// AuthService implements login, registration, role administration and the
// token-based role gate.
type AuthService struct {
	repo   ports.UserRepository
	hasher *PasswordHasher
	tokens ports.TokenCodec
	audit  ports.AuditRecorder
	log    zerolog.Logger
}

func NewAuthService(
	repo ports.UserRepository,
	hasher *PasswordHasher,
	tokens ports.TokenCodec,
	audit ports.AuditRecorder,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, log: log}
}

// Login verifies credentials and mints a token. An unknown identifier still
// pays one hash comparison so found and not-found are indistinguishable in
// both latency and error shape.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidCredentials
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.hasher.DummyVerify(password)
			s.record(domain.AuthEvent{Subject: email, Action: domain.AuditLoginFailed, Detail: "unknown user"})
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, fmt.Errorf("login: %w", err)
	}

	if !s.hasher.Verify(password, user.PasswordHash) {
		s.record(domain.AuthEvent{Subject: email, Action: domain.AuditLoginFailed, Detail: "wrong password"})
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email)
	if err != nil {
		return "", nil, fmt.Errorf("issue token: %w", err)
	}

	s.record(domain.AuthEvent{Subject: email, Action: domain.AuditLogin})
	return token, user, nil
}

// Register creates a user with the default role. The store enforces email
// uniqueness atomically; concurrent duplicates lose with ErrUserExists.
func (s *AuthService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Email:        email,
		PasswordHash: hash,
		Role:         domain.DefaultRole,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Subject: email, Action: domain.AuditRegister})
	return created, nil
}

// UpdateRole changes an existing user's role. Admin gating happens in the
// calling layer; this method only enforces role validity and existence.
func (s *AuthService) UpdateRole(ctx context.Context, email string, role domain.Role) (*domain.User, error) {
	email = domain.NormalizeEmail(email)
	if !role.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidRole, role)
	}

	updated, err := s.repo.UpdateRole(ctx, email, role)
	if err != nil {
		return nil, err
	}

	s.record(domain.AuthEvent{Subject: email, Action: domain.AuditRoleChange, Detail: string(role)})
	return updated, nil
}

// Authenticate resolves a bearer token to its user. Every failure mode —
// missing token, bad signature, expiry, vanished subject — collapses into
// ErrUnauthenticated so callers leak nothing about which check failed.
func (s *AuthService) Authenticate(ctx context.Context, token string) (*domain.User, error) {
	if token == "" {
		return nil, domain.ErrUnauthenticated
	}

	subject, err := s.tokens.Validate(token)
	if err != nil {
		s.log.Debug().Err(err).Msg("token rejected")
		return nil, domain.ErrUnauthenticated
	}

	user, err := s.repo.FindByEmail(ctx, subject)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnauthenticated
		}
		return nil, fmt.Errorf("authenticate: %w", err)
	}
	return user, nil
}

// Authorize authenticates the token and enforces exact membership in the
// allowed role set. An empty set denies every valid user.
func (s *AuthService) Authorize(ctx context.Context, token string, allowed ...domain.Role) (*domain.User, error) {
	user, err := s.Authenticate(ctx, token)
	if err != nil {
		return nil, err
	}

	if !user.Role.In(allowed) {
		s.record(domain.AuthEvent{Subject: user.Email, Action: domain.AuditAccessDenied, Detail: domain.RoleNames(allowed)})
		return nil, &domain.ForbiddenError{Allowed: allowed}
	}
	return user, nil
}

func (s *AuthService) record(event domain.AuthEvent) {
	if s.audit == nil {
		return
	}
	if event.OccurredAt.IsZero() {
		event.OccurredAt = time.Now().UTC()
	}
	s.audit.Record(event)
}
