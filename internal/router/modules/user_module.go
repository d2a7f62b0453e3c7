package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takumi-dev/go-user-management/internal/container"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	handlers "github.com/takumi-dev/go-user-management/internal/interface/http"
	"github.com/takumi-dev/go-user-management/internal/interface/middleware"
)

// UserModule registers the authenticated profile endpoints.
type UserModule struct {
	Handler *handlers.UserHandler
	Auth    *service.AuthService
}

func NewUserModule(h *handlers.UserHandler, auth *service.AuthService) *UserModule {
	return &UserModule{Handler: h, Auth: auth}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.GET("/me", m.Handler.Me)
		auth.PUT("/me", m.Handler.UpdateMe)

		resendLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByUserID(), nil)
		auth.POST("/me/confirmation/resend", resendLimiter, m.Handler.ResendConfirmation)
	}
}
