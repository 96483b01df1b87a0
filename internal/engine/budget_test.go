package engine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
)

func TestNormalizedLimits_SameCurrencyPassesThrough(t *testing.T) {
	cache := rates.NewCache(&staticSource{}) // any lookup would fail
	limits := &model.BudgetLimits{
		Currency: "USD",
		Limits:   map[string]float64{"Food": 150, "Transport": 50},
	}

	got := NormalizedLimits(context.Background(), limits, "USD", cache)
	assert.Equal(t, map[string]float64{"Food": 150, "Transport": 50}, got)
}

func TestNormalizedLimits_ConvertsIntoDisplayCurrency(t *testing.T) {
	cache := rates.NewCache(usdEurSource())
	limits := &model.BudgetLimits{
		Currency: "EUR",
		Limits:   map[string]float64{"Food": 100},
	}

	got := NormalizedLimits(context.Background(), limits, "USD", cache)
	assert.InDelta(t, 110.0, got["Food"], 1e-9)
}

func TestNormalizedLimits_FetchFailureCarriesLimitUnchanged(t *testing.T) {
	cache := rates.NewCache(&staticSource{})
	limits := &model.BudgetLimits{
		Currency: "EUR",
		Limits:   map[string]float64{"Food": 100},
	}

	// Degraded mode: the limit is treated as already being in the
	// display currency rather than zeroing the budget out.
	got := NormalizedLimits(context.Background(), limits, "USD", cache)
	assert.Equal(t, 100.0, got["Food"])
}

func TestRemainingByCategory_ClampsAtZero(t *testing.T) {
	spent := []model.CategoryAggregate{
		{Category: "Food", Total: 120},
		{Category: "Transport", Total: 80},
	}
	limits := map[string]float64{"Food": 150, "Transport": 50, "Health": 40}

	got := RemainingByCategory(spent, limits)
	assert.Equal(t, 30.0, got["Food"])
	assert.Equal(t, 0.0, got["Transport"]) // overspent, never negative
	assert.Equal(t, 40.0, got["Health"])   // untouched limit
}

func TestConsumedPercentage(t *testing.T) {
	spent := []model.CategoryAggregate{{Category: "Food", Total: 140}}
	limits := map[string]float64{"Food": 150}

	pct, ok := ConsumedPercentage("Food", spent, limits)
	require.True(t, ok)
	assert.InDelta(t, 93.33, pct, 0.01)
}

func TestConsumedPercentage_NoSignalWithoutPositiveLimit(t *testing.T) {
	spent := []model.CategoryAggregate{{Category: "Food", Total: 140}}

	_, ok := ConsumedPercentage("Food", spent, map[string]float64{})
	assert.False(t, ok)

	_, ok = ConsumedPercentage("Food", spent, map[string]float64{"Food": 0})
	assert.False(t, ok)
}

func TestCheckThresholds_WarnsAtNinetyPercent(t *testing.T) {
	spent := []model.CategoryAggregate{
		{Category: "Food", Total: 140},
		{Category: "Transport", Total: 10},
	}
	limits := map[string]float64{"Food": 150, "Transport": 50}

	warnings := CheckThresholds(spent, limits)
	require.Len(t, warnings, 1)
	assert.Equal(t, "Food", warnings[0].Category)
	assert.Equal(t, 140.0, warnings[0].Spent)
	assert.Equal(t, 150.0, warnings[0].Limit)
	assert.InDelta(t, 93.33, warnings[0].Percentage, 0.01)
}

func TestCheckThresholds_MissingLimitIsNotAnError(t *testing.T) {
	spent := []model.CategoryAggregate{{Category: "Crypto", Total: 9999}}

	warnings := CheckThresholds(spent, map[string]float64{"Food": 150})
	assert.Empty(t, warnings)
}

func TestCheckThresholds_ExactBoundary(t *testing.T) {
	spent := []model.CategoryAggregate{{Category: "Food", Total: 135}}
	limits := map[string]float64{"Food": 150}

	// 135/150 is exactly 90%.
	warnings := CheckThresholds(spent, limits)
	require.Len(t, warnings, 1)
	assert.InDelta(t, 90.0, warnings[0].Percentage, 1e-9)
}
