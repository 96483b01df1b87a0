package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// DefaultBaseURL is the public rate source. Any provider exposing
// GET /v4/latest/{base} -> {"rates": {code: factor}} satisfies the
// contract; only the shape matters.
const DefaultBaseURL = "https://api.exchangerate-api.com"

// Table maps currency codes to the amount of that currency bought by one
// unit of Base, as returned by the rate source at call time. Rates are
// always current; historical accuracy is out of scope.
type Table struct {
	Base  string             `json:"base"`
	Rates map[string]float64 `json:"rates"`
}

// Convert converts amount from one currency to another using t.
//
// Same-currency conversion returns amount unchanged, with no float
// round-trip applied. A code missing from the table yields 0 and an
// *InvalidRateError; zero is the documented degraded value, the error
// makes the degradation countable.
func Convert(amount float64, from, to string, t Table) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := t.Rates[from]
	if !ok || fromRate == 0 {
		return 0, &InvalidRateError{From: from, To: to, Missing: from}
	}
	toRate, ok := t.Rates[to]
	if !ok {
		return 0, &InvalidRateError{From: from, To: to, Missing: to}
	}
	return amount * (toRate / fromRate), nil
}

// Client fetches rate tables over HTTP. It holds no mutable state and is
// safe for concurrent use.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retry      RetryConfig
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetry enables retrying failed fetches. The default is a single
// attempt with explicit failure.
func WithRetry(cfg RetryConfig) Option {
	return func(c *Client) { c.retry = cfg }
}

// NewClient creates a rate client. An empty baseURL selects the default
// public source.
func NewClient(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// GetRates fetches the current table for the given base currency.
// Failures return a *FetchError; the caller decides how to degrade.
func (c *Client) GetRates(ctx context.Context, base string) (Table, error) {
	if c.retry.MaxRetries > 0 {
		return DoWithRetry(ctx, c.retry, func(ctx context.Context) (Table, error) {
			return c.fetch(ctx, base)
		})
	}
	return c.fetch(ctx, base)
}

func (c *Client) fetch(ctx context.Context, base string) (Table, error) {
	url := fmt.Sprintf("%s/v4/latest/%s", c.baseURL, base)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Table{}, &FetchError{Base: base, Cause: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Table{}, &FetchError{Base: base, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Table{}, &FetchError{Base: base, Cause: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	var table Table
	if err := json.NewDecoder(resp.Body).Decode(&table); err != nil {
		return Table{}, &FetchError{Base: base, Cause: fmt.Errorf("malformed response: %w", err)}
	}
	if len(table.Rates) == 0 {
		return Table{}, &FetchError{Base: base, Cause: fmt.Errorf("malformed response: empty rate table")}
	}
	table.Base = base
	return table, nil
}
