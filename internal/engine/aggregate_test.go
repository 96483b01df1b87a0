package engine

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
)

func TestByCategory_MixedCurrencies(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Groceries", "Food", 100, "USD", now),
		expense("Dinner out", "Food", 50, "EUR", now),
	}

	aggs, unconverted := ByCategory(context.Background(), batch, "USD", cache, nil)
	require.Len(t, aggs, 1)
	assert.Equal(t, 0, unconverted)
	assert.Equal(t, "Food", aggs[0].Category)
	assert.InDelta(t, 155.0, aggs[0].Total, 1e-9)
}

func TestByCategory_SortsByTotalDescThenName(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Bus ticket", "Transport", 20, "USD", now),
		expense("Cinema", "Entertainment", 20, "USD", now),
		expense("Groceries", "Food", 80, "USD", now),
	}

	aggs, _ := ByCategory(context.Background(), batch, "USD", cache, nil)
	require.Len(t, aggs, 3)
	assert.Equal(t, "Food", aggs[0].Category)
	// Equal totals tie-break alphabetically.
	assert.Equal(t, "Entertainment", aggs[1].Category)
	assert.Equal(t, "Transport", aggs[2].Category)
}

func TestByCategory_ZeroFillsFromProvider(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	batch := []*model.Expense{
		expense("Groceries", "Food", 80, "USD", time.Now()),
	}
	provider := func() []string { return []string{"Food", "Transport", "Health"} }

	aggs, _ := ByCategory(context.Background(), batch, "USD", cache, provider)
	require.Len(t, aggs, 3)
	assert.Equal(t, model.CategoryAggregate{Category: "Food", Total: 80}, aggs[0])
	assert.Equal(t, model.CategoryAggregate{Category: "Health", Total: 0}, aggs[1])
	assert.Equal(t, model.CategoryAggregate{Category: "Transport", Total: 0}, aggs[2])
}

func TestByCategory_UnconvertedContributeZero(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Groceries", "Food", 100, "USD", now),
		expense("Mystery", "Food", 500, "XYZ", now),
	}

	aggs, unconverted := ByCategory(context.Background(), batch, "USD", cache, nil)
	require.Len(t, aggs, 1)
	assert.Equal(t, 1, unconverted)
	assert.Equal(t, 100.0, aggs[0].Total)
}

func TestTotal_EqualsSumOfCategoryTotals(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Groceries", "Food", 100, "USD", now),
		expense("Dinner", "Food", 50, "EUR", now),
		expense("Bus ticket", "Transport", 3.5, "USD", now),
		expense("Mystery", "Other", 10, "XYZ", now),
	}

	total, _ := Total(context.Background(), batch, "USD", cache)
	aggs, _ := ByCategory(context.Background(), batch, "USD", cache, nil)

	var sum float64
	for _, agg := range aggs {
		sum += agg.Total
	}
	assert.InDelta(t, sum, total, 1e-9)
}

func TestByDay_AscendingBuckets(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	batch := []*model.Expense{
		expense("b", "Food", 20, "USD", time.Date(2026, 3, 2, 14, 0, 0, 0, time.UTC)),
		expense("a", "Food", 10, "USD", time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)),
		expense("c", "Food", 5, "USD", time.Date(2026, 3, 2, 20, 0, 0, 0, time.UTC)),
	}

	days, _ := ByDay(context.Background(), batch, "USD", cache)
	require.Len(t, days, 2)
	assert.Equal(t, "2026-03-01", days[0].Bucket)
	assert.Equal(t, 10.0, days[0].Total)
	assert.Equal(t, "2026-03-02", days[1].Bucket)
	assert.Equal(t, 25.0, days[1].Total)
	assert.Len(t, days[1].Records, 2)
}

func TestByMonth_GroupsAcrossMonths(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	batch := []*model.Expense{
		expense("jan", "Food", 10, "USD", time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)),
		expense("feb", "Food", 20, "USD", time.Date(2026, 2, 15, 0, 0, 0, 0, time.UTC)),
		expense("jan2", "Food", 5, "USD", time.Date(2026, 1, 20, 0, 0, 0, 0, time.UTC)),
	}

	months, _ := ByMonth(context.Background(), batch, "USD", cache)
	require.Len(t, months, 2)
	assert.Equal(t, "2026-01", months[0].Bucket)
	assert.Equal(t, 15.0, months[0].Total)
	assert.Equal(t, "2026-02", months[1].Bucket)
}

func TestApplyFilter_TextIsCaseInsensitiveSubstring(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Bus ticket", "Transport", 3.5, "USD", now),
		expense("Groceries", "Food", 80, "USD", now),
	}

	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{Text: "bus"}, "USD", cache)
	require.Len(t, got, 1)
	assert.Equal(t, "Bus ticket", got[0].Description)
}

func TestApplyFilter_AmountBoundsUseDisplayAmounts(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Dinner", "Food", 50, "EUR", now), // 55 USD
		expense("Snack", "Food", 5, "USD", now),
	}

	min := 10.0
	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{MinAmount: &min}, "USD", cache)
	require.Len(t, got, 1)
	assert.Equal(t, "Dinner", got[0].Description)

	max := 10.0
	got = ApplyFilter(context.Background(), batch, model.ExpenseFilter{MaxAmount: &max}, "USD", cache)
	require.Len(t, got, 1)
	assert.Equal(t, "Snack", got[0].Description)
}

func TestApplyFilter_UnconvertedRecordsBypassAmountBounds(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Dinner", "Food", 100, "USD", now),
		expense("Mystery", "Food", 500, "XYZ", now), // no XYZ rate available
	}

	min := 50.0
	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{MinAmount: &min}, "USD", cache)
	require.Len(t, got, 2)

	aggs, unconverted := ByCategory(context.Background(), got, "USD", cache, nil)
	assert.Equal(t, 1, unconverted)
	require.Len(t, aggs, 1)
	assert.InDelta(t, 100.0, aggs[0].Total, 1e-9)
}

func TestApplyFilter_DateMatchesCalendarDay(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	batch := []*model.Expense{
		expense("Morning", "Food", 5, "USD", time.Date(2026, 4, 10, 8, 0, 0, 0, time.UTC)),
		expense("Other day", "Food", 5, "USD", time.Date(2026, 4, 11, 8, 0, 0, 0, time.UTC)),
	}

	day := time.Date(2026, 4, 10, 23, 0, 0, 0, time.UTC)
	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{Date: &day}, "USD", cache)
	require.Len(t, got, 1)
	assert.Equal(t, "Morning", got[0].Description)
}

func TestApplyFilter_ConstraintsCompose(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	now := time.Now()
	batch := []*model.Expense{
		expense("Bus ticket", "Transport", 3.5, "USD", now),
		expense("Bus pass", "Transport", 90, "USD", now),
	}

	min := 10.0
	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{Text: "bus", MinAmount: &min}, "USD", cache)
	require.Len(t, got, 1)
	assert.Equal(t, "Bus pass", got[0].Description)
}

func TestApplyFilter_ZeroFilterReturnsInput(t *testing.T) {
	cache := rates.NewCache(&staticSource{}) // any lookup would fail
	batch := []*model.Expense{
		expense("Anything", "Food", 1, "XYZ", time.Now()),
	}

	got := ApplyFilter(context.Background(), batch, model.ExpenseFilter{}, "USD", cache)
	assert.Len(t, got, 1)
}
