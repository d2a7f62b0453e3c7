package application

import (
	"context"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// LogoutRequest carries the raw token to revoke.
type LogoutRequest struct {
	Token string
}

// UserLogoutUseCase revokes a session token. Revoking an expired or
// malformed token is a no-op; only a missing token is an error.
type UserLogoutUseCase struct {
	auth *service.AuthService
}

func NewUserLogoutUseCase(auth *service.AuthService) *UserLogoutUseCase {
	return &UserLogoutUseCase{auth: auth}
}

func (uc *UserLogoutUseCase) Execute(ctx context.Context, req LogoutRequest) error {
	if req.Token == "" {
		return apperr.Validation("token is required")
	}
	return uc.auth.InvalidateToken(ctx, valueobject.AuthTokenFromString(req.Token))
}
