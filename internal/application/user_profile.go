package application

import (
	"context"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/repository"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// UpdateProfileRequest carries the fields to change; empty fields are left
// untouched.
type UpdateProfileRequest struct {
	UserID string
	Name   string
	Email  string
}

// UserProfileUseCase reads and updates the authenticated user's profile.
type UserProfileUseCase struct {
	users repository.UserRepository
}

func NewUserProfileUseCase(users repository.UserRepository) *UserProfileUseCase {
	return &UserProfileUseCase{users: users}
}

func (uc *UserProfileUseCase) Get(ctx context.Context, userID string) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}
	return user, nil
}

// Update applies a profile change. An email change is validated and
// checked for uniqueness before the entity is mutated.
func (uc *UserProfileUseCase) Update(ctx context.Context, req UpdateProfileRequest) (*entity.User, error) {
	user, err := uc.users.FindByID(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("user")
	}

	var email valueobject.Email
	if req.Email != "" {
		email, err = valueobject.NewEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if !email.Equals(user.Email) {
			existing, err := uc.users.FindByEmail(ctx, email)
			if err != nil {
				return nil, err
			}
			if existing != nil && !existing.Equals(user) {
				return nil, apperr.AlreadyExists("email is already registered")
			}
		}
	}

	user.UpdateProfile(req.Name, email)
	return uc.users.Save(ctx, user)
}
