package observability

import (
	"context"

	"go-courses-app/internal/core/ports"
)

// InstrumentedCache is a decorator to intercept cache calls and record metrics.
type InstrumentedCache struct {
	inner ports.Cache
}

// NewInstrumentedCache creates a new instrumented cache wrapper.
func NewInstrumentedCache(inner ports.Cache) *InstrumentedCache {
	return &InstrumentedCache{inner: inner}
}

func (c *InstrumentedCache) Get(ctx context.Context, id string) ([]byte, error) {
	data, err := c.inner.Get(ctx, id)
	if err == nil {
		if data != nil {
			cacheHits.Inc()
		} else {
			cacheMisses.Inc()
		}
	}
	return data, err
}

func (c *InstrumentedCache) Set(ctx context.Context, id string, data []byte) error {
	return c.inner.Set(ctx, id, data)
}

func (c *InstrumentedCache) Invalidate(ctx context.Context, id string) error {
	return c.inner.Invalidate(ctx, id)
}
