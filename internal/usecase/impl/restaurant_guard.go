package impl

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// requireActiveRestaurant loads a tenant and rejects it when it has been deactivated.
func requireActiveRestaurant(ctx context.Context, repo repository.RestaurantRepository, id uuid.UUID) (*entity.Restaurant, error) {
	restaurant, err := repo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrRestaurantNotFound) {
		return nil, domainerrors.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find restaurant")
	}
	if !restaurant.IsActive {
		return nil, domainerrors.ErrRestaurantInactive
	}

	return restaurant, nil
}
