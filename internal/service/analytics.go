package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spendlens/backend/internal/engine"
	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
	"github.com/spendlens/backend/internal/store"
)

// CategoryBreakdown is the per-category view of spending over a window,
// expressed in a single display currency.
type CategoryBreakdown struct {
	Currency    string                    `json:"currency"`
	Total       float64                   `json:"total"`
	Categories  []model.CategoryAggregate `json:"categories"`
	Unconverted int                       `json:"unconverted,omitempty"`
}

// CategorySpending lists spending per category within the optional date
// range, after applying the filter. Records whose currency could not be
// converted contribute zero and are surfaced through Unconverted.
func (s *SpendService) CategorySpending(ctx context.Context, target string, filter model.ExpenseFilter, startDate, endDate *time.Time) (*CategoryBreakdown, error) {
	if target == "" {
		target = DefaultDisplayCurrency
	}

	expenses, err := s.store.ListExpenses(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	cache := s.newCache()
	if err := cache.Prefetch(ctx, engine.Currencies(expenses)); err != nil {
		return nil, err
	}

	filtered := engine.ApplyFilter(ctx, expenses, filter, target, cache)
	categories, unconverted := engine.ByCategory(ctx, filtered, target, cache, s.categoryProvider(ctx))
	total, _ := engine.Total(ctx, filtered, target, cache)

	return &CategoryBreakdown{
		Currency:    target,
		Total:       total,
		Categories:  categories,
		Unconverted: unconverted,
	}, nil
}

// MonthlyTotals returns ascending per-month totals over the window.
func (s *SpendService) MonthlyTotals(ctx context.Context, target string, startDate, endDate *time.Time) ([]model.TimeAggregate, int, error) {
	if target == "" {
		target = DefaultDisplayCurrency
	}

	expenses, err := s.store.ListExpenses(ctx, startDate, endDate)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list expenses: %w", err)
	}

	cache := s.newCache()
	if err := cache.Prefetch(ctx, engine.Currencies(expenses)); err != nil {
		return nil, 0, err
	}

	months, unconverted := engine.ByMonth(ctx, expenses, target, cache)
	return months, unconverted, nil
}

// HeatmapCell is one day on the spending heatmap.
type HeatmapCell struct {
	Date  string               `json:"date"`
	Total float64              `json:"total"`
	Count int                  `json:"count"`
	Level model.IntensityLevel `json:"level"`
	Label string               `json:"label"`
}

// Heatmap is a calendar year of daily spending intensity.
type Heatmap struct {
	Year          int           `json:"year"`
	Currency      string        `json:"currency"`
	MonthlyBudget float64       `json:"monthlyBudget"`
	MaxDailyTotal float64       `json:"maxDailyTotal"`
	Cells         []HeatmapCell `json:"cells"`
	Unconverted   int           `json:"unconverted,omitempty"`
}

// DailyHeatmap aggregates a calendar year of expenses into day cells and
// classifies each day's intensity against the total monthly budget. With
// no budget configured every cell classifies as NONE.
func (s *SpendService) DailyHeatmap(ctx context.Context, year int, target string) (*Heatmap, error) {
	if target == "" {
		target = DefaultDisplayCurrency
	}

	start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(1, 0, 0).Add(-time.Nanosecond)

	expenses, err := s.store.ListExpenses(ctx, &start, &end)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	limits, err := s.store.GetBudgetLimits(ctx)
	if err != nil && err != store.ErrNotFound {
		return nil, fmt.Errorf("failed to get budget limits: %w", err)
	}

	cache := s.newCache()
	prefetch := engine.Currencies(expenses)
	if limits != nil && limits.Currency != "" {
		prefetch = append(prefetch, limits.Currency)
	}
	if err := cache.Prefetch(ctx, prefetch); err != nil {
		return nil, err
	}

	var monthlyBudget float64
	if limits != nil {
		for _, limit := range engine.NormalizedLimits(ctx, limits, target, cache) {
			monthlyBudget += limit
		}
	}

	days, unconverted := engine.ByDay(ctx, expenses, target, cache)

	heatmap := &Heatmap{
		Year:          year,
		Currency:      target,
		MonthlyBudget: monthlyBudget,
		Cells:         make([]HeatmapCell, 0, len(days)),
		Unconverted:   unconverted,
	}
	for _, day := range days {
		if day.Total > heatmap.MaxDailyTotal {
			heatmap.MaxDailyTotal = day.Total
		}
		heatmap.Cells = append(heatmap.Cells, HeatmapCell{
			Date:  day.Bucket,
			Total: day.Total,
			Count: len(day.Records),
			Level: engine.Classify(day.Total, monthlyBudget),
			Label: fmt.Sprintf("%d expenses totaling %s", len(day.Records), rates.FormatAmount(day.Total, target)),
		})
	}
	return heatmap, nil
}
