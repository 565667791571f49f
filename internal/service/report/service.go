// Package report builds spending summaries and chart images for the
// dashboard endpoints.
package report

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	chart "github.com/wcharczuk/go-chart/v2"

	"github.com/finchat/finchat-backend/internal/domain"
)

// breakdownSource provides the per-category aggregates the reports are
// built from.
type breakdownSource interface {
	CategoryTotals(ctx context.Context) ([]domain.CategoryTotal, error)
	Total(ctx context.Context) (float64, error)
}

// Summary is the per-category spending breakdown.
type Summary struct {
	Total      float64
	Categories []domain.CategoryTotal
}

// Service implements reporting operations.
type Service struct {
	log      *slog.Logger
	expenses breakdownSource
}

// NewService creates a new report service instance.
func NewService(logger *slog.Logger, expenses breakdownSource) *Service {
	return &Service{
		log:      logger.With("service", "report"),
		expenses: expenses,
	}
}

// Summary returns the caller's total spend and per-category totals,
// largest category first.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	total, err := s.expenses.Total(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Summary total: %w", err)
	}

	categories, err := s.expenses.CategoryTotals(ctx)
	if err != nil {
		return nil, fmt.Errorf("report.Summary categories: %w", err)
	}

	return &Summary{
		Total:      total,
		Categories: categories,
	}, nil
}

// CategoryChart renders the caller's category breakdown as a PNG pie
// chart. Returns ErrNotFound when there is nothing to draw.
func (s *Service) CategoryChart(ctx context.Context) ([]byte, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	if len(summary.Categories) == 0 || summary.Total <= 0 {
		return nil, fmt.Errorf("no expenses to chart: %w", domain.ErrNotFound)
	}

	values := make([]chart.Value, 0, len(summary.Categories))
	for _, ct := range summary.Categories {
		percentage := ct.Total / summary.Total * 100
		values = append(values, chart.Value{
			Label: fmt.Sprintf("%s: ₹%.0f (%.1f%%)", ct.Category, ct.Total, percentage),
			Value: ct.Total,
		})
	}

	pie := chart.PieChart{
		Title:  "Spending by category",
		Width:  800,
		Height: 800,
		Values: values,
		Background: chart.Style{
			Padding: chart.Box{
				Top:    50,
				Left:   50,
				Right:  50,
				Bottom: 50,
			},
			FillColor: chart.ColorWhite,
		},
	}

	var buf bytes.Buffer
	if err := pie.Render(chart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("render category chart: %w", err)
	}

	return buf.Bytes(), nil
}
