package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/takumi-dev/go-user-management/config"
	"github.com/takumi-dev/go-user-management/internal/application"
	"github.com/takumi-dev/go-user-management/internal/domain/apperr"
	pginfra "github.com/takumi-dev/go-user-management/internal/infrastructure/postgres"
	"github.com/takumi-dev/go-user-management/internal/infrastructure/queue"
	"github.com/takumi-dev/go-user-management/pkg/helpers"
)

// Seeds the initial super-admin account. Safe to re-run: registration
// refuses a second super-admin.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger := helpers.NewLogger(cfg.AppName, cfg.Env)

	email := getenv("SEED_SUPER_ADMIN_EMAIL", "admin@example.com")
	password := getenv("SEED_SUPER_ADMIN_PASSWORD", "AdminPass123!")
	name := getenv("SEED_SUPER_ADMIN_NAME", "Super Admin")

	ctx := context.Background()
	pool, err := pginfra.NewPool(ctx, cfg.PostgresDSN(), cfg.DBMaxConns, cfg.DBMinConns, cfg.DBMaxConnLife)
	if err != nil {
		log.Fatalf("failed to connect to postgres: %v", err)
	}
	defer pool.Close()

	repo := pginfra.NewUserRepository(pool)
	mail := queue.NewEmailService(nil, logger) // no queue during seeding

	uc := application.NewSuperAdminRegistrationUseCase(repo, mail)
	user, err := uc.Execute(ctx, application.RegistrationRequest{
		Email:    email,
		Password: password,
		Name:     name,
	})
	if err != nil {
		if apperr.HasCode(err, apperr.CodeAlreadyExists) {
			fmt.Println("super-admin already present, nothing to do")
			return
		}
		log.Fatalf("failed to seed super-admin: %v", err)
	}
	fmt.Printf("seeded super-admin: id=%s email=%s\n", user.ID, user.Email.String())
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
