package expense

import (
	"context"
	"fmt"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/pkg/ctxutil"
)

// List returns the authenticated user's expenses, newest first, capped at
// the configured history limit. An empty ledger yields an empty slice.
func (s *Service) List(ctx context.Context) ([]domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	expenses, err := s.repo.ListByUser(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("expense.List: %w", err)
	}

	return expenses, nil
}

// Total returns the sum over the user's entire ledger. The sum is not
// subject to the history limit, so it can cover more rows than List returns.
func (s *Service) Total(ctx context.Context) (float64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	total, err := s.repo.TotalByUser(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("expense.Total: %w", err)
	}

	return total, nil
}

// CategoryTotals returns per-category sums over the user's entire ledger,
// largest first.
func (s *Service) CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	totals, err := s.repo.CategoryTotals(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("expense.CategoryTotals: %w", err)
	}

	return totals, nil
}
