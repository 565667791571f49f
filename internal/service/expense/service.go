// Package expense implements ledger operations on the caller's expenses.
// Every operation takes the acting user from the request context; a
// missing identity is ErrUnauthorized before any storage access.
package expense

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finchat/finchat-backend/internal/config"
	"github.com/finchat/finchat-backend/internal/domain"
)

// expenseRepo defines the repository interface needed by the expense service.
type expenseRepo interface {
	Create(ctx context.Context, e *domain.Expense) (*domain.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Expense, error)
	TotalByUser(ctx context.Context, userID uuid.UUID) (float64, error)
	DeleteBefore(ctx context.Context, userID uuid.UUID, cutoff time.Time) (int, error)
	CategoryTotals(ctx context.Context, userID uuid.UUID) ([]domain.CategoryTotal, error)
}

// Service implements expense ledger operations.
type Service struct {
	log  *slog.Logger
	repo expenseRepo
	cfg  config.ChatConfig
}

// NewService creates a new expense service instance.
func NewService(logger *slog.Logger, repo expenseRepo, cfg config.ChatConfig) *Service {
	return &Service{
		log:  logger.With("service", "expense"),
		repo: repo,
		cfg:  cfg,
	}
}
