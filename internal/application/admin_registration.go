package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/repository"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// AdminRegistrationRequest carries the new admin's details plus the ID of
// the authenticated caller, taken from the verified bearer token by the
// transport layer.
type AdminRegistrationRequest struct {
	ActorID  string
	Email    string
	Password string
	Name     string
}

// AdminRegistrationUseCase registers an admin. Only the super-admin may
// invoke it; the route layer verifies the token, and the use case
// re-validates the actor's role here.
type AdminRegistrationUseCase struct {
	users repository.UserRepository
}

func NewAdminRegistrationUseCase(users repository.UserRepository) *AdminRegistrationUseCase {
	return &AdminRegistrationUseCase{users: users}
}

// Execute registers a new admin on behalf of the super-admin actor.
func (uc *AdminRegistrationUseCase) Execute(ctx context.Context, req AdminRegistrationRequest) (*entity.User, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	actor, err := uc.users.FindByID(ctx, req.ActorID)
	if err != nil {
		return nil, err
	}
	if actor == nil || !actor.IsSuperAdmin() {
		return nil, apperr.Unauthorized("super-admin approval is required")
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("email is already registered")
	}

	admin := entity.NewUser(uuid.NewString(), req.Name, email, password, valueobject.RoleAdmin, true)
	return uc.users.Save(ctx, admin)
}
