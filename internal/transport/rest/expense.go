package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/finchat/finchat-backend/internal/domain"
	"github.com/finchat/finchat-backend/internal/service/report"
)

// expenseService defines the minimal interface needed by ExpenseHandler.
type expenseService interface {
	List(ctx context.Context) ([]domain.Expense, error)
	Total(ctx context.Context) (float64, error)
}

// reportService defines the reporting interface needed by ExpenseHandler.
type reportService interface {
	Summary(ctx context.Context) (*report.Summary, error)
	CategoryChart(ctx context.Context) ([]byte, error)
}

// ExpenseHandler serves the expense read endpoints.
type ExpenseHandler struct {
	expenses expenseService
	reports  reportService
	log      *slog.Logger
}

// NewExpenseHandler creates an ExpenseHandler.
func NewExpenseHandler(expenses expenseService, reports reportService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{
		expenses: expenses,
		reports:  reports,
		log:      logger.With("handler", "expense"),
	}
}

type expenseResponse struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Category    string    `json:"category"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
	CreatedAt   time.Time `json:"createdAt"`
}

type listExpensesResponse struct {
	Expenses []expenseResponse `json:"expenses"`
}

type totalResponse struct {
	Total float64 `json:"total"`
}

type categoryTotalResponse struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

type summaryResponse struct {
	Total      float64                 `json:"total"`
	Categories []categoryTotalResponse `json:"categories"`
}

// List handles GET /api/expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.expenses.List(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := listExpensesResponse{Expenses: make([]expenseResponse, 0, len(expenses))}
	for _, e := range expenses {
		resp.Expenses = append(resp.Expenses, expenseResponse{
			ID:          e.ID.String(),
			Amount:      e.Amount,
			Category:    e.Category.String(),
			Description: e.Description,
			Date:        e.Date,
			CreatedAt:   e.CreatedAt,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Total handles GET /api/expenses/total.
func (h *ExpenseHandler) Total(w http.ResponseWriter, r *http.Request) {
	total, err := h.expenses.Total(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, totalResponse{Total: total})
}

// Summary handles GET /api/expenses/summary.
func (h *ExpenseHandler) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := h.reports.Summary(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	resp := summaryResponse{
		Total:      summary.Total,
		Categories: make([]categoryTotalResponse, 0, len(summary.Categories)),
	}
	for _, ct := range summary.Categories {
		resp.Categories = append(resp.Categories, categoryTotalResponse{
			Category: ct.Category.String(),
			Total:    ct.Total,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Chart handles GET /api/expenses/chart. Responds with a PNG.
func (h *ExpenseHandler) Chart(w http.ResponseWriter, r *http.Request) {
	png, err := h.reports.CategoryChart(r.Context())
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.WriteHeader(http.StatusOK)
	w.Write(png) //nolint:errcheck
}

func (h *ExpenseHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not found")
	default:
		h.log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
