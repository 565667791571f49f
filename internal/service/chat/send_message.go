package chat

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/internal/service/expense"
	"github.com/finchat/finchat-backend/pkg/ctxutil"
)

// SendMessage runs one message through the full pipeline: classify,
// act on the ledger, generate a reply. Identity is checked before
// anything else; an anonymous caller triggers no model or storage calls.
//
// Ledger failures are logged with their cause and collapse into
// ErrProcessing so the client never sees internals. Payload problems
// (record without data, delete without date, invalid amounts) wrap
// ErrIntentPayload as well, so callers can distinguish them.
func (s *Service) SendMessage(ctx context.Context, input SendMessageInput) (*SendMessageResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	parsed := s.parser.Parse(ctx, input.Message)

	s.log.InfoContext(ctx, "message classified",
		slog.String("user_id", userID.String()),
		slog.String("intent", parsed.Intent.String()))

	var result ActionResult

	switch parsed.Intent {
	case domain.IntentRecord:
		if parsed.Data == nil {
			return nil, s.fail(ctx, fmt.Errorf("record without expense data: %w", domain.ErrIntentPayload))
		}
		_, err := s.expenses.Create(ctx, expense.CreateInput{
			Amount:      parsed.Data.Amount,
			Category:    parsed.Data.Category,
			Description: parsed.Data.Description,
		})
		if err != nil {
			if errors.Is(err, domain.ErrValidation) {
				return nil, s.fail(ctx, fmt.Errorf("record payload rejected: %w: %w", domain.ErrIntentPayload, err))
			}
			return nil, s.fail(ctx, err)
		}
		result.Success = true

	case domain.IntentQuery:
		total, err := s.expenses.Total(ctx)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		expenses, err := s.expenses.List(ctx)
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		result.Total = total
		result.Expenses = expenses

	case domain.IntentDelete:
		if parsed.Date == nil {
			return nil, s.fail(ctx, fmt.Errorf("delete without date: %w", domain.ErrIntentPayload))
		}
		deleted, err := s.expenses.DeleteBefore(ctx, expense.DeleteBeforeInput{Cutoff: *parsed.Date})
		if err != nil {
			return nil, s.fail(ctx, err)
		}
		result.DeletedCount = deleted

	case domain.IntentUnknown:
		// No ledger work; the responder returns the canned clarification.
	}

	response := s.responder.Generate(ctx, parsed, result)

	return &SendMessageResult{
		Response: response,
		Intent:   parsed.Intent,
	}, nil
}

// fail logs the cause and returns the single opaque pipeline error.
func (s *Service) fail(ctx context.Context, cause error) error {
	s.log.ErrorContext(ctx, "chat pipeline failed", slog.String("error", cause.Error()))
	return fmt.Errorf("%w: %w", ErrProcessing, cause)
}
