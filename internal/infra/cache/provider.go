// Package cache provides the memory and Redis implementations of service.Cache.
package cache

import (
	"context"
	"log/slog"

	"comanda/config"
	"comanda/internal/domain/constants"
	"comanda/internal/domain/lifecycle"
	"comanda/internal/domain/service"
	"comanda/internal/errors"
	"comanda/internal/infra/metrics"

	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// New selects the cache driver from config and ties its resources to the fx lifecycle.
func New(params Params) (service.Cache, error) {
	cfg := params.Config.Cache

	switch cfg.Driver {
	case constants.CacheDriverRedis:
		redisCache := NewRedisCache(cfg.Redis)
		params.Append(fx.Hook{
			OnStart: func(startCtx context.Context) error {
				ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
				defer cancel()

				// An unreachable Redis degrades to misses instead of blocking startup.
				if err := redisCache.Ping(ctx); err != nil {
					params.Logger.Warn("Redis cache unavailable at startup", slog.Any("error", err))
				}

				return nil
			},
			OnStop: func(_ context.Context) error {
				return redisCache.Close()
			},
		})
		params.Logger.Info("Using redis cache", slog.String("addr", cfg.Redis.Addr))

		return newInstrumentedCache(redisCache, constants.CacheDriverRedis, params.Metrics), nil

	case constants.CacheDriverMemory, "":
		memoryCache := NewMemoryCache(params.Logger)
		params.Append(fx.Hook{
			OnStart: func(_ context.Context) error {
				memoryCache.Start(cfg.CleanupInterval)

				return nil
			},
			OnStop: memoryCache.Stop,
		})
		params.Logger.Info("Using in-memory cache", slog.Duration("cleanupInterval", cfg.CleanupInterval))

		return newInstrumentedCache(memoryCache, constants.CacheDriverMemory, params.Metrics), nil

	default:
		return nil, errors.Errorf("unsupported cache driver: %s", cfg.Driver)
	}
}
