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

// SuperAdminRegistrationUseCase registers the single super-admin account.
type SuperAdminRegistrationUseCase struct {
	users repository.UserRepository
	mail  service.EmailService
}

func NewSuperAdminRegistrationUseCase(users repository.UserRepository, mail service.EmailService) *SuperAdminRegistrationUseCase {
	return &SuperAdminRegistrationUseCase{users: users, mail: mail}
}

// Execute registers the super-admin. The existence check runs before the
// email-uniqueness check so a second super-admin attempt is rejected no
// matter how unique its address is. The storage layer backs this with a
// partial unique index on the role column against concurrent attempts.
func (uc *SuperAdminRegistrationUseCase) Execute(ctx context.Context, req RegistrationRequest) (*entity.User, error) {
	email, err := valueobject.NewEmail(req.Email)
	if err != nil {
		return nil, err
	}
	password, err := valueobject.NewPassword(req.Password)
	if err != nil {
		return nil, err
	}

	exists, err := uc.users.ExistsSuperAdmin(ctx)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.AlreadyExists("super-admin already registered")
	}

	existing, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.AlreadyExists("email is already registered")
	}

	user := entity.NewUser(uuid.NewString(), req.Name, email, password, valueobject.RoleSuperAdmin, true)
	saved, err := uc.users.Save(ctx, user)
	if err != nil {
		return nil, err
	}

	_ = uc.mail.SendConfirmationEmail(ctx, saved)

	return saved, nil
}
