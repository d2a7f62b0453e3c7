package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/takumi-dev/go-user-management/internal/container"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	handlers "github.com/takumi-dev/go-user-management/internal/interface/http"
	"github.com/takumi-dev/go-user-management/internal/interface/middleware"
)

// AdminModule registers the privileged endpoints. Super-admin bootstrap
// and login are public (the at-most-one invariant guards bootstrap);
// everything else requires a valid session.
type AdminModule struct {
	Handler *handlers.AdminHandler
	Auth    *service.AuthService
}

func NewAdminModule(h *handlers.AdminHandler, auth *service.AuthService) *AdminModule {
	return &AdminModule{Handler: h, Auth: auth}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	bootstrapLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 30, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/admin/super/register", bootstrapLimiter, m.Handler.RegisterSuperAdmin)
	rg.POST("/admin/super/login", loginLimiter, m.Handler.LoginSuperAdmin)

	auth := rg.Group("/admin")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.POST("/register", m.Handler.CreateAdmin)
		auth.GET("/users/search", m.Handler.SearchUsers)
	}
}
