// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/finchat/finchat-backend/internal/adapter/postgres"
	"github.com/finchat/finchat-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const userColumns = `id, email, name, password_hash, created_at, updated_at`

const getUserByIDSQL = `
SELECT ` + userColumns + ` FROM users WHERE id = $1`

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByIDSQL, id))
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return &u, nil
}

const getUserByEmailSQL = `
SELECT ` + userColumns + ` FROM users WHERE email = $1`

// GetByEmail returns a user by email address.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	u, err := scanUser(q.QueryRow(ctx, getUserByEmailSQL, email))
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return &u, nil
}

const createUserSQL = `
INSERT INTO users (id, email, name, password_hash, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING ` + userColumns

// Create inserts a new user and returns the persisted domain.User.
// Returns domain.ErrAlreadyExists on an email collision.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	created, err := scanUser(q.QueryRow(ctx, createUserSQL,
		u.ID, u.Email, u.Name, u.PasswordHash, u.CreatedAt, u.UpdatedAt))
	if err != nil {
		return nil, postgres.MapError(err, "user")
	}

	return &created, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.Name, &u.PasswordHash, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}
	return u, nil
}
