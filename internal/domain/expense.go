package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category is one of the fixed expense classifications the intent parser
// is instructed to choose from.
type Category string

const (
	CategoryFood          Category = "Food"
	CategoryTransport     Category = "Transport"
	CategoryShopping      Category = "Shopping"
	CategoryEntertainment Category = "Entertainment"
	CategoryBills         Category = "Bills"
	CategoryHealthcare    Category = "Healthcare"
	CategoryOther         Category = "Other"
)

func (c Category) String() string { return string(c) }

func (c Category) IsValid() bool {
	switch c {
	case CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment,
		CategoryBills, CategoryHealthcare, CategoryOther:
		return true
	}
	return false
}

// Categories returns the closed set of valid categories in display order.
func Categories() []Category {
	return []Category{
		CategoryFood, CategoryTransport, CategoryShopping, CategoryEntertainment,
		CategoryBills, CategoryHealthcare, CategoryOther,
	}
}

// Expense is a single ledger entry. Owned by exactly one user, created
// only through the record intent path, never updated in place, deleted
// only in bulk by date cutoff.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Amount      float64
	Category    Category
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// Validate checks the invariants enforced before an expense reaches
// storage: positive amount, category in the closed set, non-empty
// description.
func (e *Expense) Validate() error {
	var errs []FieldError

	if e.UserID == uuid.Nil {
		errs = append(errs, FieldError{Field: "user_id", Message: "required"})
	}
	if e.Amount <= 0 {
		errs = append(errs, FieldError{Field: "amount", Message: "must be positive"})
	}
	if !e.Category.IsValid() {
		errs = append(errs, FieldError{Field: "category", Message: "unknown category"})
	}
	if e.Description == "" {
		errs = append(errs, FieldError{Field: "description", Message: "required"})
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// CategoryTotal is a per-category aggregate used by the summary endpoint
// and the chat query context.
type CategoryTotal struct {
	Category Category
	Total    float64
}
