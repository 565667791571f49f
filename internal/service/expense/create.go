package expense

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/pkg/ctxutil"
)

// Create records one expense for the authenticated user.
// The expense is validated before it reaches storage.
func (s *Service) Create(ctx context.Context, input CreateInput) (*domain.Expense, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := time.Now()
	date := input.Date
	if date.IsZero() {
		date = now
	}

	e := &domain.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Amount:      input.Amount,
		Category:    input.Category,
		Description: input.Description,
		Date:        date,
		CreatedAt:   now,
	}
	if err := e.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, e)
	if err != nil {
		return nil, fmt.Errorf("expense.Create: %w", err)
	}

	s.log.InfoContext(ctx, "expense recorded",
		slog.String("expense_id", created.ID.String()),
		slog.Float64("amount", created.Amount),
		slog.String("category", created.Category.String()))

	return created, nil
}
