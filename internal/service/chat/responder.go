package chat

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/finchat/finchat-backend/internal/domain"
)

const responderSystemPrompt = `You are a friendly personal finance assistant named FinChat. Respond in a conversational, helpful tone. Keep responses concise but informative. Use emojis sparingly but appropriately.`

// unknownReply is returned for unclassifiable messages without touching
// the model.
const unknownReply = "I'm sorry, I didn't understand that. You can record expenses like '₹500 pizza' or ask questions like 'How much have I spent?'"

// Responder turns a handled intent into the assistant's reply.
type Responder struct {
	log         *slog.Logger
	ai          aiClient
	recentLimit int
}

// NewResponder creates a new response generator. recentLimit caps how
// many individual expenses go into the query response context.
func NewResponder(logger *slog.Logger, ai aiClient, recentLimit int) *Responder {
	return &Responder{
		log:         logger.With("component", "responder"),
		ai:          ai,
		recentLimit: recentLimit,
	}
}

// Generate produces the reply for a handled intent. It never returns an
// error: if the model call fails the reply comes from a canned template
// instead. Unknown intents short-circuit to a fixed clarification and
// never reach the model.
func (r *Responder) Generate(ctx context.Context, parsed domain.ParsedIntent, result ActionResult) string {
	if parsed.Intent == domain.IntentUnknown {
		return unknownReply
	}

	reply, err := r.tryGenerate(ctx, parsed, result)
	if err != nil {
		r.log.WarnContext(ctx, "response generation failed, using fallback",
			slog.String("intent", parsed.Intent.String()),
			slog.String("error", err.Error()))
		return r.fallback(parsed, result)
	}
	return reply
}

// tryGenerate builds the intent-specific context and asks the model for
// a conversational reply.
func (r *Responder) tryGenerate(ctx context.Context, parsed domain.ParsedIntent, result ActionResult) (string, error) {
	return r.ai.Complete(ctx, responderSystemPrompt, r.buildContext(parsed, result))
}

// fallback returns the canned reply for the intent when the model is
// unavailable.
func (r *Responder) fallback(parsed domain.ParsedIntent, result ActionResult) string {
	switch parsed.Intent {
	case domain.IntentRecord:
		if parsed.Data == nil {
			return "I processed your request, but couldn't generate a proper response."
		}
		return fmt.Sprintf("✅ Great! I've recorded your ₹%v expense for %s under %s.",
			parsed.Data.Amount, parsed.Data.Description, parsed.Data.Category)
	case domain.IntentQuery:
		return fmt.Sprintf("📊 You've spent a total of ₹%v so far.", result.Total)
	case domain.IntentDelete:
		return fmt.Sprintf("🗑️ I've deleted %d expense records as requested.", result.DeletedCount)
	default:
		return "I processed your request, but couldn't generate a proper response."
	}
}

// buildContext renders the situation the model should respond to.
func (r *Responder) buildContext(parsed domain.ParsedIntent, result ActionResult) string {
	switch parsed.Intent {
	case domain.IntentRecord:
		if result.Success {
			return fmt.Sprintf("User successfully recorded expense: ₹%v for %s (%s). The expense has been saved to their database. Provide a friendly confirmation.",
				parsed.Data.Amount, parsed.Data.Description, parsed.Data.Category)
		}
		return fmt.Sprintf("Failed to record expense: ₹%v for %s. Provide an apologetic response.",
			parsed.Data.Amount, parsed.Data.Description)

	case domain.IntentQuery:
		if len(result.Expenses) == 0 {
			return fmt.Sprintf("User asked: %q. They haven't recorded any expenses yet. Encourage them to start tracking their expenses.",
				parsed.Query)
		}
		return fmt.Sprintf("User asked: %q. Their total spending is ₹%v.\n\nCategory breakdown: %s.\n\nRecent expenses: %s.\n\nProvide a helpful analysis of their spending patterns and category breakdown.",
			parsed.Query, result.Total,
			categoryBreakdown(result.Expenses),
			recentExpenses(result.Expenses, r.recentLimit))

	case domain.IntentDelete:
		var before string
		if parsed.Date != nil {
			before = fmt.Sprintf(" of expenses before %s", parsed.Date.Format("Mon Jan 2 2006"))
		}
		return fmt.Sprintf("User requested deletion%s. Deleted %d expense records. Confirm what was deleted.",
			before, result.DeletedCount)
	}

	return ""
}

// categoryBreakdown sums the listed expenses per category, in first-seen
// order. Computed over the listed window, not the full ledger.
func categoryBreakdown(expenses []domain.Expense) string {
	totals := make(map[domain.Category]float64)
	var order []domain.Category
	for _, e := range expenses {
		if _, seen := totals[e.Category]; !seen {
			order = append(order, e.Category)
		}
		totals[e.Category] += e.Amount
	}

	parts := make([]string, 0, len(order))
	for _, c := range order {
		parts = append(parts, fmt.Sprintf("%s: ₹%v", c, totals[c]))
	}
	return strings.Join(parts, ", ")
}

// recentExpenses renders up to limit entries.
func recentExpenses(expenses []domain.Expense, limit int) string {
	n := len(expenses)
	if n > limit {
		n = limit
	}

	parts := make([]string, 0, n)
	for _, e := range expenses[:n] {
		parts = append(parts, fmt.Sprintf("₹%v on %s (%s)", e.Amount, e.Description, e.Category))
	}
	return strings.Join(parts, ", ")
}
