package rates

import (
	"fmt"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var displayPrinter = message.NewPrinter(language.AmericanEnglish)

// FormatAmount renders an amount with its currency symbol for display.
// Rounding to presentation precision happens here and only here; internal
// aggregation always carries unrounded values.
func FormatAmount(amount float64, code string) string {
	unit, err := currency.ParseISO(code)
	if err != nil {
		return fmt.Sprintf("%.2f %s", amount, code)
	}
	return displayPrinter.Sprintf("%v", currency.Symbol(unit.Amount(amount)))
}
