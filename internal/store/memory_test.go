package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
)

func TestMemoryStore_ExpenseLifecycle(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	e := &model.Expense{
		Description:      "Coffee",
		Category:         "Food & Dining",
		OriginalAmount:   4.5,
		OriginalCurrency: "USD",
		Date:             time.Now(),
	}
	require.NoError(t, s.CreateExpense(ctx, e))
	assert.NotEmpty(t, e.ID, "store assigns an id when none is set")

	got, err := s.GetExpense(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Coffee", got.Description)

	require.NoError(t, s.DeleteExpense(ctx, e.ID))
	_, err = s.GetExpense(ctx, e.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, s.DeleteExpense(ctx, "missing"), ErrNotFound)
}

func TestMemoryStore_ListExpensesDateRange(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2026, 1, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	for i, d := range dates {
		require.NoError(t, s.CreateExpense(ctx, &model.Expense{
			ID:   string(rune('a' + i)),
			Date: d,
		}))
	}

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 2, 28, 0, 0, 0, 0, time.UTC)

	got, err := s.ListExpenses(ctx, &start, &end)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)

	all, err := s.ListExpenses(ctx, nil, nil)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// Sorted by date ascending.
	assert.Equal(t, "a", all[0].ID)
	assert.Equal(t, "c", all[2].ID)
}

func TestMemoryStore_BudgetLimits(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	_, err := s.GetBudgetLimits(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	limits := &model.BudgetLimits{
		Currency: "USD",
		Limits:   map[string]float64{"Food & Dining": 150},
	}
	require.NoError(t, s.SetBudgetLimits(ctx, limits))

	got, err := s.GetBudgetLimits(ctx)
	require.NoError(t, err)
	assert.Equal(t, "USD", got.Currency)
	assert.Equal(t, 150.0, got.Limits["Food & Dining"])
}

func TestMemoryStore_Categories(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	got, err := s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	require.NoError(t, s.SaveCategories(ctx, []string{"Food & Dining", "Travel"}))
	got, err = s.ListCategories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Food & Dining", "Travel"}, got)
}

func TestMemoryStore_RecurringExpenses(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	active := &model.RecurringExpense{
		ID:     "rt-1",
		Status: model.RecurringStatusActive,
	}
	ended := &model.RecurringExpense{
		ID:     "rt-2",
		Status: model.RecurringStatusEnded,
	}
	require.NoError(t, s.CreateRecurringExpense(ctx, active))
	require.NoError(t, s.CreateRecurringExpense(ctx, ended))

	got, err := s.ListRecurringExpenses(ctx, model.RecurringStatusActive)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rt-1", got[0].ID)

	all, err := s.ListRecurringExpenses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	active.Status = model.RecurringStatusEnded
	require.NoError(t, s.UpdateRecurringExpense(ctx, active))
	got, err = s.ListRecurringExpenses(ctx, model.RecurringStatusActive)
	require.NoError(t, err)
	assert.Empty(t, got)

	assert.ErrorIs(t, s.UpdateRecurringExpense(ctx, &model.RecurringExpense{ID: "missing"}), ErrNotFound)
	require.NoError(t, s.DeleteRecurringExpense(ctx, "rt-2"))
	assert.ErrorIs(t, s.DeleteRecurringExpense(ctx, "rt-2"), ErrNotFound)
}

func TestMemoryStore_Notifications(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	older := &model.Notification{
		ID:        "n-1",
		Type:      model.NotificationBudgetThreshold,
		CreatedAt: time.Now().Add(-time.Hour),
	}
	newer := &model.Notification{
		ID:        "n-2",
		Type:      model.NotificationBudgetThreshold,
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.CreateNotification(ctx, older))
	require.NoError(t, s.CreateNotification(ctx, newer))

	got, err := s.ListNotifications(ctx, false)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "n-2", got[0].ID, "newest first")

	require.NoError(t, s.MarkNotificationRead(ctx, "n-2"))
	unread, err := s.ListNotifications(ctx, true)
	require.NoError(t, err)
	require.Len(t, unread, 1)
	assert.Equal(t, "n-1", unread[0].ID)

	assert.ErrorIs(t, s.MarkNotificationRead(ctx, "missing"), ErrNotFound)
}

func TestMemoryStore_HasNotification(t *testing.T) {
	s := NewMemoryStore()
	ctx := context.Background()

	require.NoError(t, s.CreateNotification(ctx, &model.Notification{
		ID:          "n-recent",
		Type:        model.NotificationBudgetThreshold,
		ReferenceID: "Food & Dining",
		Metadata:    map[string]string{"threshold": "90"},
		CreatedAt:   time.Now().Add(-time.Hour),
	}))
	require.NoError(t, s.CreateNotification(ctx, &model.Notification{
		ID:          "n-stale",
		Type:        model.NotificationBudgetThreshold,
		ReferenceID: "Transportation",
		Metadata:    map[string]string{"threshold": "90"},
		CreatedAt:   time.Now().Add(-31 * 24 * time.Hour),
	}))

	exists, err := s.HasNotification(ctx, model.NotificationBudgetThreshold, "Food & Dining", "threshold", "90", 720)
	require.NoError(t, err)
	assert.True(t, exists)

	// Same category but a different threshold value does not match.
	exists, err = s.HasNotification(ctx, model.NotificationBudgetThreshold, "Food & Dining", "threshold", "100", 720)
	require.NoError(t, err)
	assert.False(t, exists)

	// Outside the dedup window.
	exists, err = s.HasNotification(ctx, model.NotificationBudgetThreshold, "Transportation", "threshold", "90", 720)
	require.NoError(t, err)
	assert.False(t, exists)
}
