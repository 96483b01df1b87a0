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
)

// RecurringRunSummary reports one processor pass.
type RecurringRunSummary struct {
	Processed int `json:"processed"`
	Skipped   int `json:"skipped"`
	Ended     int `json:"ended"`
	Errors    int `json:"errors"`
}

// CreateRecurringExpense validates and stores a recurring template. A
// zero NextOccurrence starts at StartDate.
func (s *SpendService) CreateRecurringExpense(ctx context.Context, rt *model.RecurringExpense) error {
	if rt.Description == "" {
		return model.ErrEmptyDescription
	}
	if rt.OriginalAmount <= 0 {
		return model.ErrInvalidAmount
	}
	if rt.OriginalCurrency == "" {
		return model.ErrEmptyCurrency
	}
	switch rt.Frequency {
	case model.FrequencyDaily, model.FrequencyWeekly, model.FrequencyMonthly, model.FrequencyYearly:
	default:
		return fmt.Errorf("unknown frequency: %q", rt.Frequency)
	}

	if rt.ID == "" {
		rt.ID = uuid.New().String()
	}
	if rt.NextOccurrence.IsZero() {
		rt.NextOccurrence = rt.StartDate
	}
	if rt.Status == "" {
		rt.Status = model.RecurringStatusActive
	}
	now := time.Now()
	rt.CreatedAt = now
	rt.UpdatedAt = now

	return s.store.CreateRecurringExpense(ctx, rt)
}

// ListRecurringExpenses returns templates, optionally filtered by status.
func (s *SpendService) ListRecurringExpenses(ctx context.Context, status model.RecurringStatus) ([]*model.RecurringExpense, error) {
	rts, err := s.store.ListRecurringExpenses(ctx, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}
	return rts, nil
}

// DeleteRecurringExpense removes a template. Expenses it already
// materialized are untouched.
func (s *SpendService) DeleteRecurringExpense(ctx context.Context, id string) error {
	if err := s.store.DeleteRecurringExpense(ctx, id); err != nil {
		return fmt.Errorf("failed to delete recurring expense: %w", err)
	}
	return nil
}

// ProcessRecurringExpenses processes all active recurring templates that
// are due, creating the corresponding expenses and advancing the next
// occurrence date. It is designed to be driven by a scheduler.
func (s *SpendService) ProcessRecurringExpenses(ctx context.Context, now time.Time) (*RecurringRunSummary, error) {
	rts, err := s.store.ListRecurringExpenses(ctx, model.RecurringStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to list recurring expenses: %w", err)
	}

	cache := s.newCache()
	summary := &RecurringRunSummary{}
	for _, rt := range rts {
		processed, ended, procErr := s.processOneRecurring(ctx, rt, now, cache)
		if procErr != nil {
			log.Printf("[RecurringProcessor] error processing template %s: %v", rt.ID, procErr)
			summary.Errors++
			continue
		}
		if ended {
			summary.Ended++
		} else if processed {
			summary.Processed++
		} else {
			summary.Skipped++
		}
	}

	log.Printf("[RecurringProcessor] completed: processed=%d skipped=%d ended=%d errors=%d",
		summary.Processed, summary.Skipped, summary.Ended, summary.Errors)
	return summary, nil
}

// processOneRecurring handles a single template.
// Returns (processed, ended, error).
func (s *SpendService) processOneRecurring(ctx context.Context, rt *model.RecurringExpense, now time.Time, cache *rates.Cache) (bool, bool, error) {
	if rt.NextOccurrence.IsZero() {
		return false, false, fmt.Errorf("recurring expense %s has no next occurrence", rt.ID)
	}

	// Not yet due -- skip
	if rt.NextOccurrence.After(now) {
		return false, false, nil
	}

	// Past the end date -- mark ended without materializing
	if !rt.EndDate.IsZero() && rt.NextOccurrence.After(rt.EndDate) {
		rt.Status = model.RecurringStatusEnded
		rt.UpdatedAt = time.Now()
		if err := s.store.UpdateRecurringExpense(ctx, rt); err != nil {
			return false, false, fmt.Errorf("failed to mark recurring expense as ended: %w", err)
		}
		return false, true, nil
	}

	if err := s.createExpenseFromRecurring(ctx, rt, cache); err != nil {
		return false, false, fmt.Errorf("failed to create expense: %w", err)
	}

	newNext := nextOccurrence(rt.NextOccurrence, rt.Frequency)
	rt.NextOccurrence = newNext
	rt.UpdatedAt = time.Now()

	// If the advanced date is past the end date, the template is done.
	if !rt.EndDate.IsZero() && newNext.After(rt.EndDate) {
		rt.Status = model.RecurringStatusEnded
	}

	if err := s.store.UpdateRecurringExpense(ctx, rt); err != nil {
		return false, false, fmt.Errorf("failed to update recurring expense next occurrence: %w", err)
	}
	return true, false, nil
}

// createExpenseFromRecurring materializes a one-time expense from a
// template, dated at its due occurrence.
func (s *SpendService) createExpenseFromRecurring(ctx context.Context, rt *model.RecurringExpense, cache *rates.Cache) error {
	expense := &model.Expense{
		ID:               uuid.New().String(),
		Description:      rt.Description,
		Category:         rt.Category,
		OriginalAmount:   rt.OriginalAmount,
		OriginalCurrency: rt.OriginalCurrency,
		Date:             rt.NextOccurrence,
		CreatedAt:        time.Now(),
	}

	amount, ok := engine.DisplayAmount(ctx, expense, DefaultDisplayCurrency, cache)
	if !ok {
		log.Printf("[RecurringProcessor] rates unavailable for %s, storing zero display amount for expense %s",
			expense.OriginalCurrency, expense.ID)
	}
	expense.Amount = amount

	return s.store.CreateExpense(ctx, expense)
}

// nextOccurrence advances a due date by one period.
func nextOccurrence(from time.Time, freq model.Frequency) time.Time {
	switch freq {
	case model.FrequencyDaily:
		return from.AddDate(0, 0, 1)
	case model.FrequencyWeekly:
		return from.AddDate(0, 0, 7)
	case model.FrequencyYearly:
		return from.AddDate(1, 0, 0)
	default: // monthly
		return from.AddDate(0, 1, 0)
	}
}
