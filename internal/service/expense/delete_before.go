package expense

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/pkg/ctxutil"
)

// DeleteBefore removes every expense of the authenticated user dated
// strictly before the cutoff. Returns the number of deleted records;
// matching nothing is a successful delete of zero.
func (s *Service) DeleteBefore(ctx context.Context, input DeleteBeforeInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	deleted, err := s.repo.DeleteBefore(ctx, userID, input.Cutoff)
	if err != nil {
		return 0, fmt.Errorf("expense.DeleteBefore: %w", err)
	}

	s.log.InfoContext(ctx, "expenses deleted",
		slog.Int("count", deleted),
		slog.Time("cutoff", input.Cutoff))

	return deleted, nil
}
