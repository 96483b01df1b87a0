package rates

import "fmt"

// FetchError reports that a rate table could not be fetched or parsed.
// Recoverable: callers degrade to "conversion unavailable" for the
// affected base currency instead of aborting.
type FetchError struct {
	Base  string
	Cause error
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch rates for %s: %v", e.Base, e.Cause)
	}
	return fmt.Sprintf("fetch rates for %s", e.Base)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// InvalidRateError reports that a currency code was absent from a
// successfully fetched table. The conversion result is zero by contract;
// callers count these rather than fail the batch.
type InvalidRateError struct {
	From    string
	To      string
	Missing string
}

func (e *InvalidRateError) Error() string {
	return fmt.Sprintf("convert %s to %s: no rate for %s", e.From, e.To, e.Missing)
}
