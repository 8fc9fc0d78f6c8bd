package cache

import (
	"context"
	"time"

	"comanda/internal/domain/service"
	"comanda/internal/errors"
	"comanda/internal/infra/metrics"
)

// instrumentedCache counts hits and misses per driver.
type instrumentedCache struct {
	next    service.Cache
	driver  string
	metrics *metrics.Metrics
}

func newInstrumentedCache(next service.Cache, driver string, m *metrics.Metrics) service.Cache {
	return &instrumentedCache{next: next, driver: driver, metrics: m}
}

func (c *instrumentedCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.next.Get(ctx, key)
	if err != nil {
		c.metrics.CacheMisses.WithLabelValues(c.driver).Inc()

		return nil, err
	}
	c.metrics.CacheHits.WithLabelValues(c.driver).Inc()

	return value, nil
}

func (c *instrumentedCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.WithStack(c.next.Set(ctx, key, value, ttl))
}

func (c *instrumentedCache) Delete(ctx context.Context, keys ...string) error {
	return errors.WithStack(c.next.Delete(ctx, keys...))
}
