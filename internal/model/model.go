package model

import (
	"errors"
	"strings"
	"time"
)

// Expense is a single dated, categorized spend record.
//
// OriginalAmount/OriginalCurrency are authoritative. Amount is the display
// value computed when the record was written and only reflects the exchange
// rate at write time; it must be recomputed whenever the preferred display
// currency changes.
type Expense struct {
	ID               string    `json:"id" firestore:"ID"`
	Description      string    `json:"description" firestore:"Description"`
	Category         string    `json:"category" firestore:"Category"`
	Amount           float64   `json:"amount" firestore:"Amount"`
	OriginalAmount   float64   `json:"originalAmount" firestore:"OriginalAmount"`
	OriginalCurrency string    `json:"originalCurrency" firestore:"OriginalCurrency"`
	Date             time.Time `json:"date" firestore:"Date"`
	CreatedAt        time.Time `json:"createdAt" firestore:"CreatedAt"`
}

var (
	ErrInvalidAmount    = errors.New("original amount must be positive")
	ErrEmptyDescription = errors.New("description is required")
	ErrEmptyCategory    = errors.New("category is required")
	ErrEmptyCurrency    = errors.New("original currency is required")
)

// Validate checks the invariants a record must satisfy before it is stored.
func (e *Expense) Validate() error {
	if e.OriginalAmount <= 0 {
		return ErrInvalidAmount
	}
	if strings.TrimSpace(e.Description) == "" {
		return ErrEmptyDescription
	}
	if strings.TrimSpace(e.Category) == "" {
		return ErrEmptyCategory
	}
	if strings.TrimSpace(e.OriginalCurrency) == "" {
		return ErrEmptyCurrency
	}
	return nil
}

// Day truncates the expense date to its calendar day in UTC.
func (e *Expense) Day() time.Time {
	return time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), 0, 0, 0, 0, time.UTC)
}

// BudgetLimits holds the monthly per-category limits, all expressed in a
// single currency. The document's own currency tag wins over whatever
// display currency is ambient when it is stored.
type BudgetLimits struct {
	Currency string             `json:"currency" firestore:"Currency"`
	Limits   map[string]float64 `json:"limits" firestore:"Limits"`
}

// TotalLimit sums all category limits, in the limits' own currency.
func (b *BudgetLimits) TotalLimit() float64 {
	var total float64
	for _, l := range b.Limits {
		total += l
	}
	return total
}

// CategoryAggregate is a summed display-currency total for one category.
type CategoryAggregate struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// TimeAggregate is a summed display-currency total for one time bucket
// (day or month), keyed by its ISO-formatted bucket label.
type TimeAggregate struct {
	Bucket  string     `json:"bucket"`
	Total   float64    `json:"total"`
	Records []*Expense `json:"records,omitempty"`
}

// Warning flags a category whose spending has consumed at least the
// warning threshold of its budget limit. It is a pure query result;
// delivery is a collaborator's concern.
type Warning struct {
	Category   string  `json:"category"`
	Spent      float64 `json:"spent"`
	Limit      float64 `json:"limit"`
	Percentage float64 `json:"percentage"`
}

// ExpenseFilter narrows an expense set before aggregation. Zero values
// mean "no constraint"; the populated fields compose with AND semantics.
type ExpenseFilter struct {
	// Text matches case-insensitively as a substring of the description.
	Text string
	// MinAmount/MaxAmount compare against the display amount, not the
	// original-currency amount.
	MinAmount *float64
	MaxAmount *float64
	// Date matches by calendar-day equality, not timestamp range.
	Date *time.Time
}

// IsZero reports whether the filter constrains anything at all.
func (f ExpenseFilter) IsZero() bool {
	return f.Text == "" && f.MinAmount == nil && f.MaxAmount == nil && f.Date == nil
}
