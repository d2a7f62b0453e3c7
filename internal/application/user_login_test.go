package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/memstore"
)

func loginFixture(t *testing.T, role valueobject.Role) (*service.AuthService, *entity.User) {
	t.Helper()
	user := existingUser(t, "login@example.com", role)

	repo := new(MockUserRepository)
	repo.On("FindByEmail", mock.Anything, mock.Anything).Return(
		func(_ context.Context, email valueobject.Email) (*entity.User, error) {
			if email.Equals(user.Email) {
				return user, nil
			}
			return nil, nil
		})

	auth := service.NewAuthService(repo, memstore.NewDenylist(), "test-secret", time.Hour)
	return auth, user
}

func TestUserLogin(t *testing.T) {
	ctx := context.Background()

	t.Run("returns user, token and role", func(t *testing.T) {
		auth, user := loginFixture(t, valueobject.RoleUser)
		uc := NewUserLoginUseCase(auth)

		resp, err := uc.Execute(ctx, LoginRequest{Email: "login@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)
		assert.Equal(t, user.ID, resp.User.ID)
		assert.Equal(t, "user", resp.Role)
		assert.False(t, resp.Token.IsZero())
	})

	t.Run("rejects wrong password", func(t *testing.T) {
		auth, _ := loginFixture(t, valueobject.RoleUser)
		uc := NewUserLoginUseCase(auth)

		_, err := uc.Execute(ctx, LoginRequest{Email: "login@example.com", Password: "Wr0ng!Pass"})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeAuthentication))
	})
}

func TestSuperAdminLogin(t *testing.T) {
	ctx := context.Background()
	req := LoginRequest{Email: "login@example.com", Password: "Str0ng!Pass"}

	t.Run("accepts the super-admin", func(t *testing.T) {
		auth, _ := loginFixture(t, valueobject.RoleSuperAdmin)
		resp, err := NewSuperAdminLoginUseCase(auth).Execute(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "super_admin", resp.Role)
	})

	t.Run("rejects valid credentials without the role", func(t *testing.T) {
		auth, _ := loginFixture(t, valueobject.RoleUser)
		_, err := NewSuperAdminLoginUseCase(auth).Execute(ctx, req)
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	})
}

func TestUserLogout(t *testing.T) {
	ctx := context.Background()
	auth, _ := loginFixture(t, valueobject.RoleUser)
	login := NewUserLoginUseCase(auth)
	logout := NewUserLogoutUseCase(auth)

	t.Run("revokes the session token", func(t *testing.T) {
		resp, err := login.Execute(ctx, LoginRequest{Email: "login@example.com", Password: "Str0ng!Pass"})
		require.NoError(t, err)
		require.True(t, auth.IsTokenValid(ctx, resp.Token))

		require.NoError(t, logout.Execute(ctx, LogoutRequest{Token: resp.Token.String()}))
		assert.False(t, auth.IsTokenValid(ctx, resp.Token))

		// Logging out twice is fine.
		assert.NoError(t, logout.Execute(ctx, LogoutRequest{Token: resp.Token.String()}))
	})

	t.Run("requires a token", func(t *testing.T) {
		err := logout.Execute(ctx, LogoutRequest{})
		require.Error(t, err)
		assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
	})
}
