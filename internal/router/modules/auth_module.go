package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takumi-dev/go-user-management/internal/container"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	handlers "github.com/takumi-dev/go-user-management/internal/interface/http"
	"github.com/takumi-dev/go-user-management/internal/interface/middleware"
)

// AuthModule registers public registration/login endpoints and the
// authenticated logout.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *service.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, auth *service.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with IP-based rate limits.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/register", registerLimiter, m.Handler.RegisterUser)
	rg.POST("/auth/login", loginLimiter, m.Handler.LoginUser)
	rg.GET("/auth/token/validate", m.Handler.ValidateToken)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("/auth/logout", m.Handler.LogoutUser)
	}
}
