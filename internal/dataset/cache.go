package dataset

import (
	"context"
	"sync"
)

// Source loads a dataset from disk
type Source interface {
	Load(ctx context.Context) (*Dataset, error)
}

// Cache holds the process-wide dataset. It is populated on the first Get and
// reused for every later request; only a process restart drops it.
// A failed load is not remembered, so the next request tries again.
type Cache struct {
	source Source

	mu sync.Mutex
	ds *Dataset
}

// NewCache creates an empty cache over source
func NewCache(source Source) *Cache {
	return &Cache{source: source}
}

// Get returns the cached dataset, loading it on first use
func (c *Cache) Get(ctx context.Context) (*Dataset, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.ds != nil {
		return c.ds, nil
	}

	ds, err := c.source.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.ds = ds
	return ds, nil
}
