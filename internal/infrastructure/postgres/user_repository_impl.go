package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/takumi-dev/go-user-management/internal/domain/entity"
	"github.com/takumi-dev/go-user-management/internal/domain/repository"
	"github.com/takumi-dev/go-user-management/internal/domain/valueobject"
)

// UserRepository persists the user aggregate in Postgres. The users table
// carries a unique index on email and a partial unique index on
// role='super_admin', so both uniqueness invariants hold even under
// concurrent registrations.
type UserRepository struct {
	pool *pgxpool.Pool
}

func NewUserRepository(pool *pgxpool.Pool) *UserRepository {
	return &UserRepository{pool: pool}
}

func (r *UserRepository) Save(ctx context.Context, u *entity.User) (*entity.User, error) {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO users (id, name, email, password_hash, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE
		SET name = EXCLUDED.name,
		    email = EXCLUDED.email,
		    password_hash = EXCLUDED.password_hash,
		    is_active = EXCLUDED.is_active,
		    updated_at = EXCLUDED.updated_at
	`, u.ID, u.Name, u.Email.String(), u.Password.Hash(), u.Role.String(), u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email valueobject.Email) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE email = $1
	`, email.String()))
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	return r.scanOne(r.pool.QueryRow(ctx, `
		SELECT id, name, email, password_hash, role, is_active, created_at, updated_at
		FROM users
		WHERE id = $1
	`, id))
}

func (r *UserRepository) ExistsSuperAdmin(ctx context.Context) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM users WHERE role = $1)
	`, valueobject.RoleSuperAdmin.String()).Scan(&exists)
	return exists, err
}

func (r *UserRepository) scanOne(row pgx.Row) (*entity.User, error) {
	var (
		u        entity.User
		rawEmail string
		hash     string
		rawRole  string
	)
	if err := row.Scan(&u.ID, &u.Name, &rawEmail, &hash, &rawRole, &u.IsActive, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	email, err := valueobject.NewEmail(rawEmail)
	if err != nil {
		return nil, err
	}
	role, err := valueobject.ParseRole(rawRole)
	if err != nil {
		return nil, err
	}
	u.Email = email
	u.Password = valueobject.PasswordFromHash(hash)
	u.Role = role
	return &u, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
