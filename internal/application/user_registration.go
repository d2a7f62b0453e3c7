// Package application holds the use cases that orchestrate the identity
// domain: registration, login and logout. Each use case validates value
// objects first, then checks uniqueness invariants against the
// repository, then persists and notifies.
package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/repository"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// RegistrationRequest carries the raw input shared by all registration
// use cases.
type RegistrationRequest struct {
	Email    string
	Password string
	Name     string
}

// UserRegistrationUseCase registers a regular user.
type UserRegistrationUseCase struct {
	users repository.UserRepository
	mail  service.EmailService
}

func NewUserRegistrationUseCase(users repository.UserRepository, mail service.EmailService) *UserRegistrationUseCase {
	return &UserRegistrationUseCase{users: users, mail: mail}
}

// Execute registers a new user with role "user" and sends a confirmation
// email. Fails with an ALREADY_EXISTS error when the email is taken.
func (uc *UserRegistrationUseCase) Execute(ctx context.Context, req RegistrationRequest) (*entity.User, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("email is already registered")
	}

	user := entity.NewUser(uuid.NewString(), req.Name, email, password, valueobject.RoleUser, true)
	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	// Fire-and-forget; delivery failures are the mail collaborator's
	// problem, not a registration failure.
	_ = uc.mail.SendConfirmationEmail(ctx, saved)

	return saved, nil
}
