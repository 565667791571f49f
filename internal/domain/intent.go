package domain

import "time"

// Intent is the classified purpose of a user chat message.
type Intent string

const (
	IntentRecord  Intent = "record"
	IntentQuery   Intent = "query"
	IntentDelete  Intent = "delete"
	IntentUnknown Intent = "unknown"
)

func (i Intent) String() string { return string(i) }

func (i Intent) IsValid() bool {
	switch i {
	case IntentRecord, IntentQuery, IntentDelete, IntentUnknown:
		return true
	}
	return false
}

// ExpenseData is the structured payload the model extracts for a record
// intent. The model is the only source of these fields; they are
// validated before anything is written.
type ExpenseData struct {
	Amount      float64
	Category    Category
	Description string
}

// ParsedIntent is the ephemeral result of classifying one user message.
// It is produced fresh per message and never persisted. Data is set iff
// the intent is record, Query iff query, Date iff delete and the model
// extracted a usable date.
type ParsedIntent struct {
	Intent Intent
	Data   *ExpenseData
	Query  string
	Date   *time.Time
}

// UnknownIntent is what every parser failure collapses to.
func UnknownIntent() ParsedIntent {
	return ParsedIntent{Intent: IntentUnknown}
}
