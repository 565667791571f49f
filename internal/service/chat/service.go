// Package chat implements the conversational pipeline: one user message
// in, one assistant reply out. The parser classifies the message, the
// dispatcher runs the matching ledger operation, and the responder turns
// the outcome into text.
package chat

import (
	"context"
	"errors"
	"log/slog"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/internal/service/expense"
)

// ErrProcessing is the only error surfaced for internal pipeline
// failures. The cause is logged; the client sees this fixed message.
var ErrProcessing = errors.New("Something went wrong processing your message.")

// intentParser classifies a raw user message.
type intentParser interface {
	Parse(ctx context.Context, message string) domain.ParsedIntent
}

// replyGenerator produces the assistant reply for a handled intent.
type replyGenerator interface {
	Generate(ctx context.Context, parsed domain.ParsedIntent, result ActionResult) string
}

// ledger defines the expense operations the dispatcher needs.
type ledger interface {
	Create(ctx context.Context, input expense.CreateInput) (*domain.Expense, error)
	List(ctx context.Context) ([]domain.Expense, error)
	Total(ctx context.Context) (float64, error)
	DeleteBefore(ctx context.Context, input expense.DeleteBeforeInput) (int, error)
}

// ActionResult carries the outcome of the dispatched ledger operation
// into response generation. Only the fields for the handled intent are
// populated.
type ActionResult struct {
	Success      bool
	Total        float64
	Expenses     []domain.Expense
	DeletedCount int
}

// Service implements the chat message pipeline.
type Service struct {
	log       *slog.Logger
	parser    intentParser
	responder replyGenerator
	expenses  ledger
}

// NewService creates a new chat service instance.
func NewService(logger *slog.Logger, parser intentParser, responder replyGenerator, expenses ledger) *Service {
	return &Service{
		log:       logger.With("service", "chat"),
		parser:    parser,
		responder: responder,
		expenses:  expenses,
	}
}
