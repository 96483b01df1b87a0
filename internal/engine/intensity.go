package engine

import (
	"time"

	"github.com/spendlens/backend/internal/model"
)

// DailyBudgetDivisor converts a monthly budget into its per-day
// equivalent. Ten is the historical behavior, not the number of days in
// a month; see PerDayOfMonth for the calendar-aware alternative.
const DailyBudgetDivisor = 10

// DailyBudgetFunc derives a per-day-equivalent budget from the total
// monthly budget for a given day.
type DailyBudgetFunc func(monthlyBudget float64, day time.Time) float64

// FixedDivisor is the default daily-budget rule: monthly / 10.
func FixedDivisor(monthlyBudget float64, _ time.Time) float64 {
	return monthlyBudget / DailyBudgetDivisor
}

// PerDayOfMonth divides the monthly budget by the actual number of days
// in the day's month. Not the default; offered as the extension point
// for callers that want calendar-accurate daily budgets.
func PerDayOfMonth(monthlyBudget float64, day time.Time) float64 {
	firstOfMonth := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, time.UTC)
	days := firstOfMonth.AddDate(0, 1, -1).Day()
	return monthlyBudget / float64(days)
}

// Intensity thresholds, as fractions of the daily budget. Classification
// picks the highest threshold met or exceeded.
const (
	lowFraction        = 0.02
	mediumFraction     = 0.05
	highFraction       = 0.10
	criticalFraction   = 0.20
	overTheTopFraction = 0.30
)

// Classify maps one day's total spend to an intensity level using the
// default daily-budget rule. Amounts must already be in the currency the
// budget is denominated in; the classifier never converts.
func Classify(dailyTotal, monthlyBudget float64) model.IntensityLevel {
	return ClassifyWith(dailyTotal, monthlyBudget, time.Time{}, FixedDivisor)
}

// ClassifyWith is Classify with a caller-chosen daily-budget rule.
// Zero spend or a zero budget always classifies as NONE.
func ClassifyWith(dailyTotal, monthlyBudget float64, day time.Time, dailyBudget DailyBudgetFunc) model.IntensityLevel {
	if dailyTotal <= 0 || monthlyBudget <= 0 {
		return model.IntensityNone
	}
	budget := dailyBudget(monthlyBudget, day)
	if budget <= 0 {
		return model.IntensityNone
	}

	ratio := dailyTotal / budget
	switch {
	case ratio >= overTheTopFraction:
		return model.IntensityOverTheTop
	case ratio >= criticalFraction:
		return model.IntensityCritical
	case ratio >= highFraction:
		return model.IntensityHigh
	case ratio >= mediumFraction:
		return model.IntensityMedium
	case ratio >= lowFraction:
		return model.IntensityLow
	default:
		return model.IntensityNone
	}
}
