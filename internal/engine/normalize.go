// Package engine contains the pure computation core: normalizing expense
// amounts into a display currency, aggregating them by category and time
// bucket, evaluating budget consumption, and classifying daily spending
// intensity. Everything here is synchronous and referentially transparent
// over immutable inputs; the only suspension points are rate lookups,
// which go through a per-request rates.Cache supplied by the caller.
package engine

import (
	"context"

	"github.com/spendlens/backend/internal/model"
	"github.com/spendlens/backend/internal/rates"
)

// Normalized pairs an expense with its display-currency amount.
// Converted is false when rates for the record's original currency were
// unavailable; Display is then 0, included in totals by contract but
// counted so the degradation stays visible.
type Normalized struct {
	Expense *model.Expense
	Display float64
	// Converted reports whether Display actually reflects the original
	// amount. A false value means the record degraded to zero.
	Converted bool
}

// DisplayAmount converts one expense into the target currency.
//
// Same-currency records pass through exactly, with no rate lookup and no
// floating round-trip. A record whose rates cannot be fetched, or whose
// currency is absent from its table, yields (0, false) rather than an
// error so one bad record cannot abort a whole batch.
func DisplayAmount(ctx context.Context, e *model.Expense, target string, cache *rates.Cache) (float64, bool) {
	if e.OriginalCurrency == target {
		return e.OriginalAmount, true
	}
	table, err := cache.Get(ctx, e.OriginalCurrency)
	if err != nil {
		return 0, false
	}
	amount, err := rates.Convert(e.OriginalAmount, e.OriginalCurrency, target, table)
	if err != nil {
		return 0, false
	}
	return amount, true
}

// Normalize converts a batch into the target currency. The second return
// is the number of records that could not be converted.
func Normalize(ctx context.Context, expenses []*model.Expense, target string, cache *rates.Cache) ([]Normalized, int) {
	out := make([]Normalized, 0, len(expenses))
	unconverted := 0
	for _, e := range expenses {
		display, ok := DisplayAmount(ctx, e, target, cache)
		if !ok {
			unconverted++
		}
		out = append(out, Normalized{Expense: e, Display: display, Converted: ok})
	}
	return out, unconverted
}

// Currencies returns the distinct original currencies present in the
// batch, for prefetching ahead of an aggregation pass.
func Currencies(expenses []*model.Expense) []string {
	seen := make(map[string]bool)
	var out []string
	for _, e := range expenses {
		if e.OriginalCurrency == "" || seen[e.OriginalCurrency] {
			continue
		}
		seen[e.OriginalCurrency] = true
		out = append(out, e.OriginalCurrency)
	}
	return out
}
