package service

import (
	"context"
	"fmt"
	"time"

	"github.com/spendlens/backend/internal/engine"
	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/store"
)

// BudgetStatus reports one calendar month of spending against the
// configured limits, everything expressed in the display currency.
type BudgetStatus struct {
	Month       string                    `json:"month"`
	Currency    string                    `json:"currency"`
	Spent       []model.CategoryAggregate `json:"spent"`
	Limits      map[string]float64        `json:"limits"`
	Remaining   map[string]float64        `json:"remaining"`
	Warnings    []model.Warning           `json:"warnings,omitempty"`
	TotalSpent  float64                   `json:"totalSpent"`
	TotalLimit  float64                   `json:"totalLimit"`
	Unconverted int                       `json:"unconverted,omitempty"`
}

// MonthBudgetStatus evaluates one month. With no limits configured the
// status still carries the spending; limits and warnings stay empty.
func (s *SpendService) MonthBudgetStatus(ctx context.Context, month time.Time, target string) (*BudgetStatus, error) {
	if target == "" {
		target = DefaultDisplayCurrency
	}

	start := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0).Add(-time.Nanosecond)

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

	spent, unconverted := engine.ByCategory(ctx, expenses, target, cache, s.categoryProvider(ctx))
	totalSpent, _ := engine.Total(ctx, expenses, target, cache)

	status := &BudgetStatus{
		Month:       start.Format("2006-01"),
		Currency:    target,
		Spent:       spent,
		Limits:      map[string]float64{},
		Remaining:   map[string]float64{},
		TotalSpent:  totalSpent,
		Unconverted: unconverted,
	}
	if limits == nil {
		return status, nil
	}

	normalized := engine.NormalizedLimits(ctx, limits, target, cache)
	status.Limits = normalized
	status.Remaining = engine.RemainingByCategory(spent, normalized)
	status.Warnings = engine.CheckThresholds(spent, normalized)
	for _, limit := range normalized {
		status.TotalLimit += limit
	}
	return status, nil
}
