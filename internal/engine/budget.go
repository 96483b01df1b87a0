package engine

import (
	"context"
	"math"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
)

// WarningThresholdPct is the consumed-percentage at which a category
// earns a budget warning.
const WarningThresholdPct = 90.0

// NormalizedLimits converts every budget limit into the display currency.
// A limit whose rates are unavailable is carried over unchanged — the
// documented degraded mode treats the amount as already being in the
// target currency rather than zeroing a budget out.
func NormalizedLimits(ctx context.Context, limits *model.BudgetLimits, target string, cache *rates.Cache) map[string]float64 {
	out := make(map[string]float64, len(limits.Limits))
	if limits.Currency == target || limits.Currency == "" {
		for cat, limit := range limits.Limits {
			out[cat] = limit
		}
		return out
	}

	table, err := cache.Get(ctx, limits.Currency)
	for cat, limit := range limits.Limits {
		if err != nil {
			out[cat] = limit
			continue
		}
		converted, convErr := rates.Convert(limit, limits.Currency, target, table)
		if convErr != nil {
			out[cat] = limit
			continue
		}
		out[cat] = converted
	}
	return out
}

// RemainingByCategory computes what is left of each category's limit
// after subtracting spending. Remaining is clamped at zero; overspend is
// signalled through consumed percentage, never a negative remainder.
// Both inputs must already be in the same display currency.
func RemainingByCategory(spent []model.CategoryAggregate, limits map[string]float64) map[string]float64 {
	spentBy := make(map[string]float64, len(spent))
	for _, agg := range spent {
		spentBy[agg.Category] = agg.Total
	}

	out := make(map[string]float64, len(limits))
	for cat, limit := range limits {
		out[cat] = math.Max(0, limit-spentBy[cat])
	}
	return out
}

// ConsumedPercentage returns spent/limit*100 for one category. The
// second return is false when no positive limit is configured — no
// signal, and never a division by zero.
func ConsumedPercentage(category string, spent []model.CategoryAggregate, limits map[string]float64) (float64, bool) {
	limit, ok := limits[category]
	if !ok || limit <= 0 {
		return 0, false
	}
	for _, agg := range spent {
		if agg.Category == category {
			return agg.Total / limit * 100, true
		}
	}
	return 0, true
}

// CheckThresholds emits one warning per category whose consumption has
// reached WarningThresholdPct. Categories without a configured limit are
// simply excluded — a missing budget is not an error. This is a pure
// query; persisting or delivering the warnings is the caller's business.
func CheckThresholds(spent []model.CategoryAggregate, limits map[string]float64) []model.Warning {
	var warnings []model.Warning
	for _, agg := range spent {
		limit, ok := limits[agg.Category]
		if !ok || limit <= 0 {
			continue
		}
		pct := agg.Total / limit * 100
		if pct >= WarningThresholdPct {
			warnings = append(warnings, model.Warning{
				Category:   agg.Category,
				Spent:      agg.Total,
				Limit:      limit,
				Percentage: pct,
			})
		}
	}
	return warnings
}
