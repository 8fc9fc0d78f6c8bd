package impl

import (
	"context"
	"log/slog"

	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
)

// invalidateProductListings drops the restaurant's listing and the
// cross-restaurant one. Failures are logged; the TTL bounds staleness.
func invalidateProductListings(ctx context.Context, cache service.Cache, logger *slog.Logger, restaurantID uuid.UUID) {
	keys := []string{usecase.ProductsCacheKey(&restaurantID), usecase.ProductsCacheKey(nil)}

	if err := cache.Delete(ctx, keys...); err != nil {
		logger.Warn("Failed to invalidate product listings", slog.Any("restaurantID", restaurantID), slog.Any("error", err))
	}
}
