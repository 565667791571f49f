package expense

import (
	"time"

	"github.com/finchat/finchat-backend/internal/domain"
)

// CreateInput holds parameters for recording one expense.
type CreateInput struct {
	Amount      float64
	Category    domain.Category
	Description string
	Date        time.Time // zero value means "now"
}

// DeleteBeforeInput holds parameters for the bulk delete operation.
type DeleteBeforeInput struct {
	Cutoff time.Time
}

// Validate validates the delete input.
func (i DeleteBeforeInput) Validate() error {
	var errs []domain.FieldError

	if i.Cutoff.IsZero() {
		errs = append(errs, domain.FieldError{Field: "cutoff", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
