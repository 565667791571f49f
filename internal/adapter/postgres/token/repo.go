// Package token implements the refresh token repository using PostgreSQL.
package token

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/finchat/finchat-backend/internal/adapter/postgres"
	"github.com/finchat/finchat-backend/internal/domain"
)

// Repo provides refresh token persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new refresh token repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const createTokenSQL = `
INSERT INTO refresh_tokens (id, user_id, token_hash, expires_at, created_at)
VALUES ($1, $2, $3, $4, now())
RETURNING created_at`

// Create stores a hashed refresh token. A nil token ID is assigned.
func (r *Repo) Create(ctx context.Context, t *domain.RefreshToken) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	err := q.QueryRow(ctx, createTokenSQL, t.ID, t.UserID, t.TokenHash, t.ExpiresAt).
		Scan(&t.CreatedAt)
	if err != nil {
		return postgres.MapError(err, "refresh_token")
	}

	return nil
}

const getTokenByHashSQL = `
SELECT id, user_id, token_hash, expires_at, created_at, revoked_at
FROM refresh_tokens WHERE token_hash = $1`

// GetByHash returns a refresh token by its SHA-256 hash.
// Returns domain.ErrNotFound if no such token exists.
func (r *Repo) GetByHash(ctx context.Context, tokenHash string) (*domain.RefreshToken, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var t domain.RefreshToken
	err := q.QueryRow(ctx, getTokenByHashSQL, tokenHash).
		Scan(&t.ID, &t.UserID, &t.TokenHash, &t.ExpiresAt, &t.CreatedAt, &t.RevokedAt)
	if err != nil {
		return nil, postgres.MapError(err, "refresh_token")
	}

	return &t, nil
}

const revokeByIDSQL = `
UPDATE refresh_tokens SET revoked_at = now() WHERE id = $1 AND revoked_at IS NULL`

// RevokeByID marks one token revoked. Revoking an already revoked or
// missing token is not an error.
func (r *Repo) RevokeByID(ctx context.Context, id uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeByIDSQL, id); err != nil {
		return postgres.MapError(err, "refresh_token")
	}

	return nil
}

const revokeAllByUserSQL = `
UPDATE refresh_tokens SET revoked_at = now() WHERE user_id = $1 AND revoked_at IS NULL`

// RevokeAllByUser revokes every active token of the user (logout).
func (r *Repo) RevokeAllByUser(ctx context.Context, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	if _, err := q.Exec(ctx, revokeAllByUserSQL, userID); err != nil {
		return postgres.MapError(err, "refresh_token")
	}

	return nil
}

const deleteExpiredSQL = `
DELETE FROM refresh_tokens WHERE expires_at < now() OR revoked_at IS NOT NULL`

// DeleteExpired removes expired and revoked tokens. Returns the count.
func (r *Repo) DeleteExpired(ctx context.Context) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteExpiredSQL)
	if err != nil {
		return 0, postgres.MapError(err, "refresh_token")
	}

	return int(tag.RowsAffected()), nil
}
