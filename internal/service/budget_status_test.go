package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/store"
)

func TestMonthBudgetStatus(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewSpendService(memStore, testRates())

	require.NoError(t, memStore.SetBudgetLimits(context.Background(), &model.BudgetLimits{
		Currency: "USD",
		Limits:   map[string]float64{"Food & Dining": 150, "Transportation": 50},
	}))

	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, memStore, "Groceries", "Food & Dining", 140, "USD", month.AddDate(0, 0, 10))
	seedExpense(t, memStore, "Bus ticket", "Transportation", 10, "USD", month.AddDate(0, 0, 12))
	// Outside the month, must not count.
	seedExpense(t, memStore, "July dinner", "Food & Dining", 500, "USD", month.AddDate(0, 0, -5))

	status, err := svc.MonthBudgetStatus(context.Background(), month, "USD")
	require.NoError(t, err)

	assert.Equal(t, "2026-08", status.Month)
	assert.InDelta(t, 150.0, status.TotalSpent, 1e-9)
	assert.Equal(t, 200.0, status.TotalLimit)
	assert.Equal(t, 10.0, status.Remaining["Food & Dining"])
	assert.Equal(t, 40.0, status.Remaining["Transportation"])

	// 140/150 is over the 90% line.
	require.Len(t, status.Warnings, 1)
	assert.Equal(t, "Food & Dining", status.Warnings[0].Category)
	assert.InDelta(t, 93.33, status.Warnings[0].Percentage, 0.01)
}

func TestMonthBudgetStatus_LimitsInAnotherCurrency(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewSpendService(memStore, testRates())

	require.NoError(t, memStore.SetBudgetLimits(context.Background(), &model.BudgetLimits{
		Currency: "EUR",
		Limits:   map[string]float64{"Food & Dining": 100},
	}))

	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, memStore, "Groceries", "Food & Dining", 55, "USD", month.AddDate(0, 0, 3))

	status, err := svc.MonthBudgetStatus(context.Background(), month, "USD")
	require.NoError(t, err)

	// 100 EUR limit converts to 110 USD; 55 spent leaves 55.
	assert.InDelta(t, 110.0, status.Limits["Food & Dining"], 1e-9)
	assert.InDelta(t, 55.0, status.Remaining["Food & Dining"], 1e-9)
	assert.Empty(t, status.Warnings)
}

func TestMonthBudgetStatus_NoLimitsConfigured(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewSpendService(memStore, testRates())

	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, memStore, "Groceries", "Food & Dining", 999, "USD", month)

	status, err := svc.MonthBudgetStatus(context.Background(), month, "USD")
	require.NoError(t, err)

	assert.InDelta(t, 999.0, status.TotalSpent, 1e-9)
	assert.Empty(t, status.Limits)
	assert.Empty(t, status.Remaining)
	assert.Empty(t, status.Warnings)
}

func TestEvaluateBudgetAlerts_CreatesAndDedupsNotifications(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewSpendService(memStore, testRates())
	ctx := context.Background()

	require.NoError(t, memStore.SetBudgetLimits(ctx, &model.BudgetLimits{
		Currency: "USD",
		Limits:   map[string]float64{"Food & Dining": 150},
	}))

	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, memStore, "Groceries", "Food & Dining", 140, "USD", month.AddDate(0, 0, 10))

	require.NoError(t, svc.EvaluateBudgetAlerts(ctx, month, "USD"))

	notifications, err := svc.ListNotifications(ctx, true)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, model.NotificationBudgetThreshold, notifications[0].Type)
	assert.Equal(t, "Food & Dining", notifications[0].ReferenceID)
	assert.Equal(t, "90", notifications[0].Metadata["threshold"])
	assert.Contains(t, notifications[0].Message, "93%")

	// Re-evaluating within the dedup window creates nothing new.
	require.NoError(t, svc.EvaluateBudgetAlerts(ctx, month, "USD"))
	notifications, err = svc.ListNotifications(ctx, false)
	require.NoError(t, err)
	assert.Len(t, notifications, 1)
}

func TestEvaluateBudgetAlerts_ExceededGetsOwnNotification(t *testing.T) {
	memStore := store.NewMemoryStore()
	svc := NewSpendService(memStore, testRates())
	ctx := context.Background()

	require.NoError(t, memStore.SetBudgetLimits(ctx, &model.BudgetLimits{
		Currency: "USD",
		Limits:   map[string]float64{"Food & Dining": 150},
	}))

	month := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	seedExpense(t, memStore, "Feast", "Food & Dining", 160, "USD", month.AddDate(0, 0, 10))

	require.NoError(t, svc.EvaluateBudgetAlerts(ctx, month, "USD"))

	notifications, err := svc.ListNotifications(ctx, false)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "100", notifications[0].Metadata["threshold"])
	assert.Contains(t, notifications[0].Message, "exceeded")
}
