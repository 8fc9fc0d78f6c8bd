package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"comanda/internal/domain/service"
)

type memoryEntry struct {
	value     []byte
	expiresAt time.Time
}

// MemoryCache is a process-local cache. Expired entries are invisible to Get
// and removed by the janitor started with Start.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
	logger  *slog.Logger

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// NewMemoryCache creates an empty cache. Call Start to run the janitor.
func NewMemoryCache(logger *slog.Logger) *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
		now:     time.Now,
		logger:  logger,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Get returns the value or service.ErrCacheMiss.
func (c *MemoryCache) Get(_ context.Context, key string) ([]byte, error) {
	c.mu.RLock()
	entry, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || !c.now().Before(entry.expiresAt) {
		return nil, service.ErrCacheMiss
	}

	out := make([]byte, len(entry.value))
	copy(out, entry.value)

	return out, nil
}

// Set stores a copy of value for ttl.
func (c *MemoryCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	stored := make([]byte, len(value))
	copy(stored, value)

	c.mu.Lock()
	c.entries[key] = memoryEntry{value: stored, expiresAt: c.now().Add(ttl)}
	c.mu.Unlock()

	return nil
}

// Delete removes the keys; missing keys are ignored.
func (c *MemoryCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	c.mu.Unlock()

	return nil
}

// Len returns the number of stored entries, expired or not.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Sweep removes expired entries and returns how many were dropped.
func (c *MemoryCache) Sweep() int {
	now := c.now()
	removed := 0

	c.mu.Lock()
	for key, entry := range c.entries {
		if !now.Before(entry.expiresAt) {
			delete(c.entries, key)
			removed++
		}
	}
	c.mu.Unlock()

	return removed
}

// Start runs the janitor until Stop is called.
func (c *MemoryCache) Start(interval time.Duration) {
	go func() {
		defer close(c.done)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-c.stop:
				return
			case <-ticker.C:
				if removed := c.Sweep(); removed > 0 {
					c.logger.Debug("Cache janitor swept expired entries", slog.Int("removed", removed))
				}
			}
		}
	}()
}

// Stop ends the janitor and waits for it to exit.
func (c *MemoryCache) Stop(ctx context.Context) error {
	c.stopOnce.Do(func() { close(c.stop) })

	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
