package service

import (
	"context"
	"time"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/repository"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// TokenDenylist records revoked token values until their natural
// expiration. Implementations must be safe for concurrent Add and
// Contains; multi-instance deployments should back it with a shared store.
type TokenDenylist interface {
	Add(ctx context.Context, token string, ttl time.Duration) error
	Contains(ctx context.Context, token string) (bool, error)
}

// AuthService authenticates users and tracks token session validity.
type AuthService struct {
	users    repository.UserRepository
	denylist TokenDenylist
	secret   string
	tokenTTL time.Duration
}

// NewAuthService wires the service. A non-positive tokenTTL falls back to
// the token value object's default.
func NewAuthService(users repository.UserRepository, denylist TokenDenylist, secret string, tokenTTL time.Duration) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = valueobject.DefaultTokenTTL
	}
	return &AuthService{users: users, denylist: denylist, secret: secret, tokenTTL: tokenTTL}
}

// Authenticate verifies the credentials and mints a fresh session token.
// A missing user and a wrong password produce the same error so callers
// cannot enumerate registered addresses.
func (s *AuthService) Authenticate(ctx context.Context, email, password string) (*entity.User, valueobject.AuthToken, error) {
	addr, err := valueobject.NewEmail(email)
	if err != nil {
		return nil, valueobject.AuthToken{}, apperr.Authentication("invalid email or password")
	}
	user, err := s.users.FindByEmail(ctx, addr)
	if err != nil {
		return nil, valueobject.AuthToken{}, err
	}
	if user == nil || !user.VerifyPassword(password) {
		return nil, valueobject.AuthToken{}, apperr.Authentication("invalid email or password")
	}
	if !user.IsActive {
		return nil, valueobject.AuthToken{}, apperr.Authentication("account is not active")
	}
	token, err := valueobject.NewAuthToken(user.ID, s.secret, time.Now().UTC().Add(s.tokenTTL))
	if err != nil {
		return nil, valueobject.AuthToken{}, err
	}
	return user, token, nil
}

// InvalidateToken adds the token's raw value to the denylist. Tokens that
// are already expired or fail verification are ignored; revoking them
// again is not an error. An empty token is rejected.
func (s *AuthService) InvalidateToken(ctx context.Context, token valueobject.AuthToken) error {
	if token.IsZero() {
		return apperr.Validation("token is required")
	}
	if _, err := token.Decode(s.secret); err != nil {
		return nil
	}
	ttl := s.tokenTTL
	if exp, ok := token.ExpiresAt(); ok {
		if remaining := time.Until(exp); remaining > 0 {
			ttl = remaining
		}
	}
	return s.denylist.Add(ctx, token.String(), ttl)
}

// IsTokenValid reports whether the token decodes successfully and has not
// been revoked.
func (s *AuthService) IsTokenValid(ctx context.Context, token valueobject.AuthToken) bool {
	if _, err := token.Decode(s.secret); err != nil {
		return false
	}
	revoked, err := s.denylist.Contains(ctx, token.String())
	if err != nil {
		// Fail closed: an unreachable denylist must not resurrect
		// revoked sessions.
		return false
	}
	return !revoked
}

// DecodeToken verifies the token and returns the embedded user ID. It does
// not consult the denylist; use IsTokenValid for session checks.
func (s *AuthService) DecodeToken(token valueobject.AuthToken) (string, error) {
	return token.Decode(s.secret)
}
