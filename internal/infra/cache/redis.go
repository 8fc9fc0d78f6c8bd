package cache

import (
	"context"
	"time"

	"comanda/config"
	"comanda/internal/domain/service"
	"comanda/internal/errors"

	"github.com/redis/go-redis/v9"
)

// RedisCache stores entries in Redis with native expiry.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache creates the client; the connection is checked by Ping.
func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{
			Addr:     cfg.Addr,
			Password: cfg.Password,
			DB:       cfg.DB,
		}),
	}
}

// Ping verifies the connection.
func (c *RedisCache) Ping(ctx context.Context) error {
	return errors.Wrap(c.client.Ping(ctx).Err(), "redis ping")
}

// Get returns the value or service.ErrCacheMiss.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, service.ErrCacheMiss
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}

	return value, nil
}

// Set stores value for ttl.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return errors.Wrap(c.client.Set(ctx, key, value, ttl).Err(), "redis set")
}

// Delete removes the keys.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	return errors.Wrap(c.client.Del(ctx, keys...).Err(), "redis del")
}

// Close releases the connection pool.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
