package rates

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Source is anything that can produce a rate table for a base currency.
type Source interface {
	GetRates(ctx context.Context, base string) (Table, error)
}

// Cache memoizes rate tables for the duration of a single aggregation
// pass. Each base currency is fetched exactly once per cache, including
// the failure case: a base whose fetch failed stays failed for the life
// of the cache rather than being retried mid-pass.
//
// A Cache must not outlive the request it was created for. Sharing one
// across requests would let a stale table leak between display-currency
// contexts, which is exactly the global-cache smell this type replaces.
type Cache struct {
	source Source

	mu      sync.Mutex
	entries map[string]*cacheEntry
}

type cacheEntry struct {
	once  sync.Once
	table Table
	err   error
}

// NewCache creates a per-request cache over the given source.
func NewCache(source Source) *Cache {
	return &Cache{
		source:  source,
		entries: make(map[string]*cacheEntry),
	}
}

// Get returns the table for base, fetching it on first use. Concurrent
// callers for the same base share a single fetch.
func (c *Cache) Get(ctx context.Context, base string) (Table, error) {
	c.mu.Lock()
	e, ok := c.entries[base]
	if !ok {
		e = &cacheEntry{}
		c.entries[base] = e
	}
	c.mu.Unlock()

	e.once.Do(func() {
		e.table, e.err = c.source.GetRates(ctx, base)
	})
	return e.table, e.err
}

// Prefetch resolves tables for every distinct currency in the list
// before any aggregate is finalized. Individual failures are recorded in
// the cache (and will surface as unconverted records later), so Prefetch
// itself only fails on context cancellation.
func (c *Cache) Prefetch(ctx context.Context, currencies []string) error {
	seen := make(map[string]bool, len(currencies))
	g, ctx := errgroup.WithContext(ctx)
	for _, cur := range currencies {
		if cur == "" || seen[cur] {
			continue
		}
		seen[cur] = true
		g.Go(func() error {
			_, err := c.Get(ctx, cur)
			if err != nil && ctx.Err() != nil {
				return ctx.Err()
			}
			return nil
		})
	}
	return g.Wait()
}
