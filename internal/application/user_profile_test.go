package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

func TestUserProfileGet(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the user", func(t *testing.T) {
		user := existingUser(t, "me@example.com", valueobject.RoleUser)
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		got, err := NewUserProfileUseCase(repo).Get(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, user.ID, got.ID)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, "ghost").Return(nil, nil)

		_, err := NewUserProfileUseCase(repo).Get(ctx, "ghost")
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
	})
}

func TestUserProfileUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("updates name and email", func(t *testing.T) {
		user := existingUser(t, "me@example.com", valueobject.RoleUser)
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("FindByEmail", ctx, mock.Anything).Return(nil, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(func(_ context.Context, u *entity.User) (*entity.User, error) { return u, nil })

		got, err := NewUserProfileUseCase(repo).Update(ctx, UpdateProfileRequest{UserID: user.ID, Name: "Renamed", Email: "renamed@example.com"})
		require.NoError(t, err)
		assert.Equal(t, "Renamed", got.Name)
		assert.Equal(t, "renamed@example.com", got.Email.String())
	})

	t.Run("keeping the same email skips the uniqueness check", func(t *testing.T) {
		user := existingUser(t, "me@example.com", valueobject.RoleUser)
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("Save", ctx, mock.AnythingOfType("*entity.User")).Return(func(_ context.Context, u *entity.User) (*entity.User, error) { return u, nil })

		_, err := NewUserProfileUseCase(repo).Update(ctx, UpdateProfileRequest{UserID: user.ID, Name: "Renamed", Email: "me@example.com"})
		require.NoError(t, err)
		repo.AssertNotCalled(t, "FindByEmail", mock.Anything, mock.Anything)
	})

	t.Run("rejects an email owned by someone else", func(t *testing.T) {
		user := existingUser(t, "me@example.com", valueobject.RoleUser)
		other := existingUser(t, "taken@example.com", valueobject.RoleUser)
		other.ID = "other-1"

		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)
		repo.On("FindByEmail", ctx, mock.Anything).Return(other, nil)

		_, err := NewUserProfileUseCase(repo).Update(ctx, UpdateProfileRequest{UserID: user.ID, Email: "taken@example.com"})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeAlreadyExists))
		repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("rejects an invalid new email", func(t *testing.T) {
		user := existingUser(t, "me@example.com", valueobject.RoleUser)
		repo := new(MockUserRepository)
		repo.On("FindByID", ctx, user.ID).Return(user, nil)

		_, err := NewUserProfileUseCase(repo).Update(ctx, UpdateProfileRequest{UserID: user.ID, Email: "not-an-email"})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})
}
