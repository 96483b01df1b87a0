package engine

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
)

// BucketFunc maps an expense date to its time-bucket key. Keys must be
// ISO-formatted so that lexical order equals chronological order.
type BucketFunc func(time.Time) string

// DayBucket buckets by calendar day.
func DayBucket(t time.Time) string { return t.Format("2006-01-02") }

// MonthBucket buckets by calendar month.
func MonthBucket(t time.Time) string { return t.Format("2006-01") }

// ApplyFilter narrows the expense set before aggregation. Filtering
// never happens after aggregation: min/max bounds compare against
// display amounts, the text filter is a case-insensitive substring match
// on the description, and the date filter is calendar-day equality. All
// populated constraints must hold (AND semantics).
//
// Records whose display amount cannot be determined are exempt from the
// amount bounds: their true value is unknown, so they pass through for
// downstream aggregation to report as unconverted rather than being
// silently dropped here.
func ApplyFilter(ctx context.Context, expenses []*model.Expense, f model.ExpenseFilter, target string, cache *rates.Cache) []*model.Expense {
	if f.IsZero() {
		return expenses
	}
	needle := strings.ToLower(f.Text)
	var out []*model.Expense
	for _, e := range expenses {
		if needle != "" && !strings.Contains(strings.ToLower(e.Description), needle) {
			continue
		}
		if f.Date != nil && !sameDay(e.Date, *f.Date) {
			continue
		}
		if f.MinAmount != nil || f.MaxAmount != nil {
			display, ok := DisplayAmount(ctx, e, target, cache)
			if ok {
				if f.MinAmount != nil && display < *f.MinAmount {
					continue
				}
				if f.MaxAmount != nil && display > *f.MaxAmount {
					continue
				}
			}
		}
		out = append(out, e)
	}
	return out
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// ByCategory sums display amounts per category, sorted descending by
// total with ties broken by category name ascending. When a provider is
// supplied, every category it names appears in the result, zero-filled
// if nothing matched. The int return counts unconverted records.
func ByCategory(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache, provider model.CategoryProvider) ([]model.CategoryAggregate, int) {
	normalized, unconverted := Normalize(ctx, expenses, target, cache)

	totals := make(map[string]float64)
	if provider != nil {
		for _, cat := range provider() {
			totals[cat] = 0
		}
	}
	for _, n := range normalized {
		totals[n.Expense.Category] += n.Display
	}

	out := make([]model.CategoryAggregate, 0, len(totals))
	for cat, total := range totals {
		out = append(out, model.CategoryAggregate{Category: cat, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Category < out[j].Category
	})
	return out, unconverted
}

// ByBucket groups display amounts by a caller-supplied time bucket,
// sorted ascending by bucket key (chronological for same-width buckets).
func ByBucket(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache, bucket BucketFunc) ([]model.TimeAggregate, int) {
	normalized, unconverted := Normalize(ctx, expenses, target, cache)

	totals := make(map[string]float64)
	records := make(map[string][]*model.Expense)
	for _, n := range normalized {
		key := bucket(n.Expense.Date)
		totals[key] += n.Display
		records[key] = append(records[key], n.Expense)
	}

	out := make([]model.TimeAggregate, 0, len(totals))
	for key, total := range totals {
		out = append(out, model.TimeAggregate{Bucket: key, Total: total, Records: records[key]})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Bucket < out[j].Bucket })
	return out, unconverted
}

// ByDay groups by calendar day.
func ByDay(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache) ([]model.TimeAggregate, int) {
	return ByBucket(ctx, expenses, target, cache, DayBucket)
}

// ByMonth groups by calendar month.
func ByMonth(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache) ([]model.TimeAggregate, int) {
	return ByBucket(ctx, expenses, target, cache, MonthBucket)
}

// Total sums display amounts over the (already filtered) set. For any
// input it equals the sum over ByCategory of the same set.
func Total(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache) (float64, int) {
	normalized, unconverted := Normalize(ctx, expenses, target, cache)
	var total float64
	for _, n := range normalized {
		total += n.Display
	}
	return total, unconverted
}
