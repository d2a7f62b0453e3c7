package application

import (
	"context"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// LoginRequest carries raw login credentials.
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse is the authenticated user together with the freshly
// minted session token and the role name for the transport layer.
type LoginResponse struct {
	User  *entity.User
	Token valueobject.AuthToken
	Role  string
}

// UserLoginUseCase authenticates any account.
type UserLoginUseCase struct {
	auth *service.AuthService
}

func NewUserLoginUseCase(auth *service.AuthService) *UserLoginUseCase {
	return &UserLoginUseCase{auth: auth}
}

func (uc *UserLoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, token, err := uc.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{User: user, Token: token, Role: user.Role.String()}, nil
}

// SuperAdminLoginUseCase authenticates and additionally requires the
// super-admin role.
type SuperAdminLoginUseCase struct {
	auth *service.AuthService
}

func NewSuperAdminLoginUseCase(auth *service.AuthService) *SuperAdminLoginUseCase {
	return &SuperAdminLoginUseCase{auth: auth}
}

func (uc *SuperAdminLoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	user, token, err := uc.auth.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}
	if !user.IsSuperAdmin() {
		return nil, apperr.Unauthorized("super-admin privileges are required")
	}
	return &LoginResponse{User: user, Token: token, Role: user.Role.String()}, nil
}
