package router

import (
	"github.com/takumi-dev/go-user-management/internal/application"
	"github.com/takumi-dev/go-user-management/internal/container"
	"github.com/takumi-dev/go-user-management/internal/domain/service"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/memstore"
	pginfra "github.com/takumi-dev/go-user-management/internal/infrastructure/postgres"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/queue"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/redisstore"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/search"
	handlers "github.com/takumi-dev/go-user-management/internal/interface/http"
	"github.com/takumi-dev/go-user-management/internal/router/modules"
)

// InitModules builds the dependency graph from container singletons and
// registers all feature modules. Called once during startup.
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	repo := pginfra.NewUserRepository(container.GetPGPool())

	// Redis-backed denylist when available so revocations are shared
	// across instances; in-memory fallback otherwise.
	var denylist service.TokenDenylist
	if rdb := container.GetRedis(); rdb != nil {
		denylist = redisstore.NewDenylist(rdb)
	} else {
		denylist = memstore.NewDenylist()
	}

	authSvc := service.NewAuthService(repo, denylist, cfg.JWTSecret, cfg.TokenTTL)
	mailSvc := queue.NewEmailService(container.GetRabbitPub(), logger)
	directory := search.NewUserDirectory(container.GetES(), cfg.ESUsersIndex, logger)

	registerUser := application.NewUserRegistrationUseCase(repo, mailSvc)
	registerSuper := application.NewSuperAdminRegistrationUseCase(repo, mailSvc)
	registerAdmin := application.NewAdminRegistrationUseCase(repo)
	loginUser := application.NewUserLoginUseCase(authSvc)
	loginSuper := application.NewSuperAdminLoginUseCase(authSvc)
	logout := application.NewUserLogoutUseCase(authSvc)
	profile := application.NewUserProfileUseCase(repo)

	authHandler := handlers.NewAuthHandler(registerUser, loginUser, logout, authSvc, directory, logger, cfg.CookieDomain, cfg.CookieSecure)
	userHandler := handlers.NewUserHandler(profile, mailSvc, directory, logger)
	adminHandler := handlers.NewAdminHandler(registerSuper, loginSuper, registerAdmin, profile, directory, logger, cfg.CookieDomain, cfg.CookieSecure)

	r.Add(modules.NewAuthModule(authHandler, authSvc))
	r.Add(modules.NewUserModule(userHandler, authSvc))
	r.Add(modules.NewAdminModule(adminHandler, authSvc))
}
