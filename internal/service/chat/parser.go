package chat

import (
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"github.com/finchat/finchat-backend/internal/domain"
)

// aiClient is the completion interface both the parser and the
// responder talk to.
type aiClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// parserSystemPrompt instructs the model to classify one message into
// strict JSON. The category list must stay in sync with domain.Categories.
const parserSystemPrompt = `You are a personal finance assistant. Parse user input and return ONLY valid JSON (no markdown formatting, no code blocks) with the following structure:

For expense recording (e.g., "₹500 pizza", "spent 200 on groceries"):
{
  "intent": "record",
  "data": {
    "amount": number,
    "category": string (Food, Transport, Shopping, Entertainment, Bills, Healthcare, Other),
    "description": string
  }
}

For queries (e.g., "How much have I spent?", "Show my expenses"):
{
  "intent": "query",
  "query": string (description of what they want to know)
}

For deletion (e.g., "Delete records till 1st June", "Remove all expenses from last month"):
{
  "intent": "delete",
  "date": ISO date string (if specific date mentioned)
}

For unclear input:
{
  "intent": "unknown"
}

Extract amounts in any currency (₹, $, etc.) and categorize based on common expense types. Return ONLY the JSON object, no additional text or formatting.`

// Parser classifies raw user messages with the model.
type Parser struct {
	log *slog.Logger
	ai  aiClient
}

// NewParser creates a new intent parser.
func NewParser(logger *slog.Logger, ai aiClient) *Parser {
	return &Parser{
		log: logger.With("component", "intent_parser"),
		ai:  ai,
	}
}

// parsedIntentWire mirrors the JSON shape the model is told to emit.
type parsedIntentWire struct {
	Intent string `json:"intent"`
	Data   *struct {
		Amount      float64 `json:"amount"`
		Category    string  `json:"category"`
		Description string  `json:"description"`
	} `json:"data"`
	Query string `json:"query"`
	Date  string `json:"date"`
}

// Parse classifies one message. It never returns an error: any failure
// along the way (model call, malformed JSON, unusable date) degrades to
// the unknown intent and the dispatcher carries on.
func (p *Parser) Parse(ctx context.Context, message string) domain.ParsedIntent {
	raw, err := p.ai.Complete(ctx, parserSystemPrompt, message)
	if err != nil {
		p.log.WarnContext(ctx, "intent classification failed",
			slog.String("error", err.Error()))
		return domain.UnknownIntent()
	}

	jsonText := stripCodeFences(raw)

	var wire parsedIntentWire
	if err := json.Unmarshal([]byte(jsonText), &wire); err != nil {
		p.log.WarnContext(ctx, "model returned malformed JSON",
			slog.String("error", err.Error()))
		return domain.UnknownIntent()
	}

	intent := domain.Intent(wire.Intent)
	if !intent.IsValid() {
		p.log.WarnContext(ctx, "model returned unrecognized intent",
			slog.String("intent", wire.Intent))
		return domain.UnknownIntent()
	}

	parsed := domain.ParsedIntent{
		Intent: intent,
		Query:  wire.Query,
	}

	if wire.Data != nil {
		parsed.Data = &domain.ExpenseData{
			Amount:      wire.Data.Amount,
			Category:    domain.Category(wire.Data.Category),
			Description: wire.Data.Description,
		}
	}

	if wire.Date != "" {
		date, err := parseISODate(wire.Date)
		if err != nil {
			p.log.WarnContext(ctx, "model returned unusable date",
				slog.String("date", wire.Date))
			return domain.UnknownIntent()
		}
		parsed.Date = &date
	}

	return parsed
}

// stripCodeFences removes a surrounding markdown code block if the model
// ignored the no-markdown instruction.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
	} else {
		return s
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// parseISODate accepts a full RFC3339 timestamp or a bare date.
func parseISODate(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
