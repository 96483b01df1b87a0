package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/spendlens/backend/internal/engine"
	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
	"github.com/spendlens/backend/internal/store"
)

// DefaultDisplayCurrency is used when a caller does not state one.
const DefaultDisplayCurrency = "USD"

// SpendService is the application facade over the store, the rate
// source and the aggregation engine. Every operation that needs
// conversions builds its own rates.Cache, so no rate table ever leaks
// between requests for different display currencies.
type SpendService struct {
	store      store.Store
	rateSource rates.Source
}

func NewSpendService(store store.Store, rateSource rates.Source) *SpendService {
	return &SpendService{
		store:      store,
		rateSource: rateSource,
	}
}

// AddExpenseInput carries the fields a caller supplies when recording an
// expense.
type AddExpenseInput struct {
	Description      string    `json:"description"`
	Category         string    `json:"category"`
	OriginalAmount   float64   `json:"originalAmount"`
	OriginalCurrency string    `json:"originalCurrency"`
	Date             time.Time `json:"date"`
	// DisplayCurrency determines the cached Amount written on the
	// record. Empty selects the default.
	DisplayCurrency string `json:"displayCurrency,omitempty"`
}

// AddExpense validates and stores a new expense. The stored Amount is
// the display value at today's rate; it is a cache, not a source of
// truth, and readers recompute it from the original amount whenever the
// display currency differs.
func (s *SpendService) AddExpense(ctx context.Context, in AddExpenseInput) (*model.Expense, error) {
	display := in.DisplayCurrency
	if display == "" {
		display = DefaultDisplayCurrency
	}

	expense := &model.Expense{
		ID:               uuid.New().String(),
		Description:      in.Description,
		Category:         in.Category,
		OriginalAmount:   in.OriginalAmount,
		OriginalCurrency: in.OriginalCurrency,
		Date:             in.Date,
		CreatedAt:        time.Now(),
	}
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	cache := rates.NewCache(s.rateSource)
	amount, ok := engine.DisplayAmount(ctx, expense, display, cache)
	if !ok {
		log.Printf("[SpendService] rates unavailable for %s, storing zero display amount for expense %s",
			expense.OriginalCurrency, expense.ID)
	}
	expense.Amount = amount

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}
	return expense, nil
}

// DeleteExpense removes an expense by id.
func (s *SpendService) DeleteExpense(ctx context.Context, expenseID string) error {
	if err := s.store.DeleteExpense(ctx, expenseID); err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	return nil
}

// ListExpenses returns raw records in the optional date range. No date
// means all records; any finer filtering happens in the engine, never in
// the store.
func (s *SpendService) ListExpenses(ctx context.Context, startDate, endDate *time.Time) ([]*model.Expense, error) {
	expenses, err := s.store.ListExpenses(ctx, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	return expenses, nil
}

// GetBudgetLimits returns the configured limits, or the seeded defaults
// when none have been stored yet.
func (s *SpendService) GetBudgetLimits(ctx context.Context) (*model.BudgetLimits, error) {
	limits, err := s.store.GetBudgetLimits(ctx)
	if err == store.ErrNotFound {
		return model.DefaultBudgetLimits(DefaultDisplayCurrency), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get budget limits: %w", err)
	}
	return limits, nil
}

// SetBudgetLimits stores the limits document. The document's own
// currency tag always wins over the ambient display currency.
func (s *SpendService) SetBudgetLimits(ctx context.Context, limits *model.BudgetLimits) error {
	if limits.Currency == "" {
		limits.Currency = DefaultDisplayCurrency
	}
	for cat, limit := range limits.Limits {
		if limit < 0 {
			return fmt.Errorf("budget limit for %s must not be negative", cat)
		}
	}
	if err := s.store.SetBudgetLimits(ctx, limits); err != nil {
		return fmt.Errorf("failed to set budget limits: %w", err)
	}
	return nil
}

// categoryProvider returns the dynamic category list when one is stored,
// falling back to the fixed built-in set.
func (s *SpendService) categoryProvider(ctx context.Context) model.CategoryProvider {
	stored, err := s.store.ListCategories(ctx)
	if err != nil {
		log.Printf("[SpendService] failed to list categories, using built-in set: %v", err)
	}
	if len(stored) == 0 {
		return model.FixedCategories
	}
	return func() []string { return stored }
}

// newCache builds the per-request rate cache.
func (s *SpendService) newCache() *rates.Cache {
	return rates.NewCache(s.rateSource)
}
