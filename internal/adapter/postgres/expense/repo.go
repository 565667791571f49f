// Package expense implements the Expense repository using PostgreSQL.
package expense

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/finchat/finchat-backend/internal/adapter/postgres"
	"github.com/finchat/finchat-backend/internal/domain"
)

// builder is the shared squirrel statement builder with Postgres placeholders.
var builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Repo provides expense persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new expense repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const insertExpenseSQL = `
INSERT INTO expenses (id, user_id, amount, category, description, date, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, user_id, amount, category, description, date, created_at`

// Create inserts one expense row and returns the persisted domain.Expense.
func (r *Repo) Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	row := q.QueryRow(ctx, insertExpenseSQL,
		e.ID, e.UserID, e.Amount, e.Category.String(), e.Description, e.Date, e.CreatedAt)

	created, err := scanExpense(row)
	if err != nil {
		return nil, postgres.MapError(err, "expense")
	}

	return &created, nil
}

// ListByUser returns up to limit expenses for the user, newest by
// insertion order first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Expense, error) {
	query := builder.
		Select("id", "user_id", "amount", "category", "description", "date", "created_at").
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "expense")
	}
	defer rows.Close()

	var expenses []domain.Expense
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, postgres.MapError(err, "expense")
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "expense")
	}

	return expenses, nil
}

const totalByUserSQL = `
SELECT COALESCE(SUM(amount), 0) FROM expenses WHERE user_id = $1`

// TotalByUser returns the sum of ALL of the user's expenses. Unlike
// ListByUser this is not capped at 100 rows, so the chat summary can show
// fewer expenses than the total reflects — kept that way on purpose.
func (r *Repo) TotalByUser(ctx context.Context, userID uuid.UUID) (float64, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total float64
	if err := q.QueryRow(ctx, totalByUserSQL, userID).Scan(&total); err != nil {
		return 0, postgres.MapError(err, "expense")
	}

	return total, nil
}

const deleteBeforeSQL = `
DELETE FROM expenses WHERE user_id = $1 AND date < $2`

// DeleteBefore removes all of the user's expenses dated strictly before
// cutoff. Rows dated exactly at the cutoff survive. Returns the number of
// deleted rows; deleting nothing is not an error.
func (r *Repo) DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	tag, err := q.Exec(ctx, deleteBeforeSQL, userID, cutoff)
	if err != nil {
		return 0, postgres.MapError(err, "expense")
	}

	return int(tag.RowsAffected()), nil
}

// CategoryTotals returns per-category sums over the user's entire history,
// ordered by descending total.
func (r *Repo) CategoryTotals(ctx context.Context, userID uuid.UUID) ([]domain.CategoryTotal, error) {
	query := builder.
		Select("category", "COALESCE(SUM(amount), 0) AS total").
		From("expenses").
		Where(sq.Eq{"user_id": userID}).
		GroupBy("category").
		OrderBy("total DESC")

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build category totals query: %w", err)
	}

	q := postgres.QuerierFromCtx(ctx, r.pool)
	rows, err := q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "expense")
	}
	defer rows.Close()

	var totals []domain.CategoryTotal
	for rows.Next() {
		var ct domain.CategoryTotal
		var category string
		if err := rows.Scan(&category, &ct.Total); err != nil {
			return nil, postgres.MapError(err, "expense")
		}
		ct.Category = domain.Category(category)
		totals = append(totals, ct)
	}
	if err := rows.Err(); err != nil {
		return nil, postgres.MapError(err, "expense")
	}

	return totals, nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanExpense(row rowScanner) (domain.Expense, error) {
	var e domain.Expense
	var category string

	err := row.Scan(&e.ID, &e.UserID, &e.Amount, &category, &e.Description, &e.Date, &e.CreatedAt)
	if err != nil {
		return domain.Expense{}, err
	}

	e.Category = domain.Category(category)
	return e, nil
}
