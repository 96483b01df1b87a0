package model

// CategoryProvider supplies the category universe for aggregation.
// A fixed list and a store-backed list both satisfy it; ByCategory uses
// it to zero-fill categories that have no matching expenses.
type CategoryProvider func() []string

// defaultCategories is the built-in category set.
var defaultCategories = []string{
	"Food & Dining",
	"Transportation",
	"Shopping",
	"Bills & Utilities",
	"Entertainment",
	"Healthcare",
	"Other",
}

// CategoryColors maps each built-in category to its chart/heatmap color.
var CategoryColors = map[string]string{
	"Food & Dining":     "#FF6384",
	"Transportation":    "#36A2EB",
	"Shopping":          "#FFCE56",
	"Bills & Utilities": "#4BC0C0",
	"Entertainment":     "#9966FF",
	"Healthcare":        "#FF9F40",
	"Other":             "#C9CBCF",
}

// FixedCategories returns a copy of the built-in category list.
func FixedCategories() []string {
	out := make([]string, len(defaultCategories))
	copy(out, defaultCategories)
	return out
}

// DefaultBudgetLimits seeds a budget document with the starter limits.
func DefaultBudgetLimits(currency string) *BudgetLimits {
	return &BudgetLimits{
		Currency: currency,
		Limits: map[string]float64{
			"Food & Dining":     500,
			"Transportation":    300,
			"Shopping":          400,
			"Bills & Utilities": 1000,
			"Entertainment":     200,
			"Healthcare":        300,
			"Other":             200,
		},
	}
}
