package repository

import (
	"context"

	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// UserRepository is the persistence contract the identity core depends on.
// Save has upsert semantics: an existing ID is updated, a new one inserted.
// FindByEmail and FindByID return (nil, nil) when no user matches.
type UserRepository interface {
	Save(ctx context.Context, u *entity.User) (*entity.User, error)
	FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error)
	FindByID(ctx context.Context, id string) (*entity.User, error)
	ExistsSuperAdmin(ctx context.Context) (bool, error)
}
