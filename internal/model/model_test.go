package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestExpenseValidate(t *testing.T) {
	valid := Expense{
		Description:      "Coffee",
		Category:         "Food & Dining",
		OriginalAmount:   4.5,
		OriginalCurrency: "USD",
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Expense)
		want   error
	}{
		{"zero amount", func(e *Expense) { e.OriginalAmount = 0 }, ErrInvalidAmount},
		{"negative amount", func(e *Expense) { e.OriginalAmount = -1 }, ErrInvalidAmount},
		{"blank description", func(e *Expense) { e.Description = "   " }, ErrEmptyDescription},
		{"blank category", func(e *Expense) { e.Category = "" }, ErrEmptyCategory},
		{"blank currency", func(e *Expense) { e.OriginalCurrency = "" }, ErrEmptyCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.ErrorIs(t, e.Validate(), tt.want)
		})
	}
}

func TestExpenseDay(t *testing.T) {
	e := Expense{Date: time.Date(2026, 8, 29, 23, 45, 1, 0, time.UTC)}
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), e.Day())
}

func TestBudgetLimitsTotal(t *testing.T) {
	b := BudgetLimits{Limits: map[string]float64{"Food & Dining": 150, "Transportation": 50}}
	assert.Equal(t, 200.0, b.TotalLimit())
}

func TestDefaultBudgetLimitsCoverAllCategories(t *testing.T) {
	limits := DefaultBudgetLimits("USD")
	assert.Equal(t, "USD", limits.Currency)
	for _, cat := range FixedCategories() {
		assert.Contains(t, limits.Limits, cat)
	}
}

func TestFixedCategoriesReturnsCopy(t *testing.T) {
	first := FixedCategories()
	first[0] = "mutated"
	assert.NotEqual(t, "mutated", FixedCategories()[0])
}

func TestExpenseFilterIsZero(t *testing.T) {
	assert.True(t, ExpenseFilter{}.IsZero())

	min := 1.0
	assert.False(t, ExpenseFilter{MinAmount: &min}.IsZero())
	assert.False(t, ExpenseFilter{Text: "bus"}.IsZero())
}
