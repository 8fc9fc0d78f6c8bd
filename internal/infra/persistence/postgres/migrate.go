package postgres

import (
	"context"
	"log/slog"

	"comanda/internal/errors"
	"comanda/internal/infra/persistence/model"

	"go.uber.org/fx"
	"gorm.io/gorm"
)

// Customer emails are unique per restaurant, and separately among shared
// customers. A composite unique index cannot express the second rule because
// NULL restaurant IDs never collide.
var customerEmailIndexes = []string{
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_tenant_email
		ON customers (restaurant_id, LOWER(email)) WHERE restaurant_id IS NOT NULL`,
	`CREATE UNIQUE INDEX IF NOT EXISTS idx_customers_shared_email
		ON customers (LOWER(email)) WHERE restaurant_id IS NULL`,
}

// Migrate creates or updates every table and the indexes GORM tags cannot declare.
func Migrate(ctx context.Context, db *gorm.DB, logger *slog.Logger) error {
	tx := db.WithContext(ctx)

	if err := tx.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate tables")
	}

	for _, stmt := range customerEmailIndexes {
		if err := tx.Exec(stmt).Error; err != nil {
			return errors.Wrap(err, "failed to create customer email index")
		}
	}

	logger.InfoContext(ctx, "Database schema migrated", slog.Int("tables", len(model.All())))

	return nil
}

// Module provides the database client, the transaction manager and every repository.
var Module = fx.Module("postgres",
	fx.Provide(
		New,
		NewTransactionManager,
		NewRestaurantRepository,
		NewStaffRepository,
		NewCustomerRepository,
		NewDeliveryPersonRepository,
		NewCategoryRepository,
		NewProductRepository,
		NewOrderRepository,
		NewCashRegisterRepository,
		NewDeviceRepository,
	),
)
