package postgres

import (
	"context"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	oneOpenCashRegisterIndex = "idx_cash_registers_one_open"

	defaultCashRegisterListLimit = 20
)

type cashRegisterRepository struct {
	db *gorm.DB
}

// NewCashRegisterRepository is the constructor for cashRegisterRepository.
func NewCashRegisterRepository(db *gorm.DB) repository.CashRegisterRepository {
	return &cashRegisterRepository{db: db}
}

func (repo *cashRegisterRepository) Create(ctx context.Context, register *entity.CashRegister) error {
	if register.ID == uuid.Nil {
		register.ID = uuid.New()
	}
	registerM := fromCashRegisterDomain(register)

	if err := repo.db.WithContext(ctx).Omit("DeliveryPerson").Create(registerM).Error; err != nil {
		// Two concurrent opens both pass the read check; the partial index rejects the second.
		if isUniqueViolationOn(err, oneOpenCashRegisterIndex) || isUniqueConstraintViolation(err) {
			return repository.ErrCashRegisterAlreadyOpen
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrDeliveryPersonNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to open cash register")
	}

	register.CreatedAt = registerM.CreatedAt
	register.UpdatedAt = registerM.UpdatedAt

	return nil
}

func (repo *cashRegisterRepository) FindOpen(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID) (*entity.CashRegister, error) {
	var registerM model.CashRegisterModel

	if err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("restaurant_id = ? AND delivery_person_id = ? AND is_open = ?", restaurantID, deliveryPersonID, true).
		First(&registerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCashRegisterNotFound
		}

		return nil, errors.Wrap(err, "failed to find open cash register")
	}

	return toCashRegisterDomain(&registerM), nil
}

func (repo *cashRegisterRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.CashRegister, error) {
	var registerM model.CashRegisterModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&registerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrCashRegisterNotFound
		}

		return nil, errors.Wrap(err, "failed to find cash register by ID")
	}

	return toCashRegisterDomain(&registerM), nil
}

// Update writes the closing snapshot of a session.
func (repo *cashRegisterRepository) Update(ctx context.Context, register *entity.CashRegister) error {
	result := repo.db.WithContext(ctx).
		Model(&model.CashRegisterModel{}).
		Where("restaurant_id = ? AND id = ?", register.RestaurantID, register.ID).
		Updates(map[string]any{
			"closed_at":      register.ClosedAt,
			"is_open":        register.IsOpen,
			"total_sales":    register.TotalSales,
			"total_cash":     register.TotalCash,
			"total_pos":      register.TotalPOS,
			"total_transfer": register.TotalTransfer,
			"expected_cash":  register.ExpectedCash,
			"actual_cash":    register.ActualCash,
			"difference":     register.Difference,
			"order_count":    register.OrderCount,
			"notes":          register.Notes,
		})

	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update cash register")
	}
	if result.RowsAffected == 0 {
		return repository.ErrCashRegisterNotFound
	}

	return nil
}

func (repo *cashRegisterRepository) List(ctx context.Context, filter repository.CashRegisterFilter) ([]*entity.CashRegister, int64, error) {
	scoped := func() *gorm.DB {
		query := repo.db.WithContext(ctx).
			Model(&model.CashRegisterModel{}).
			Where("restaurant_id = ?", filter.RestaurantID)
		if filter.DeliveryPersonID != nil {
			query = query.Where("delivery_person_id = ?", *filter.DeliveryPersonID)
		}
		if filter.OnlyClosed {
			query = query.Where("is_open = ?", false)
		}

		return query
	}

	var total int64
	if err := scoped().Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count cash registers")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultCashRegisterListLimit
	}

	var registerModels []*model.CashRegisterModel
	if err := scoped().
		Order("opened_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&registerModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list cash registers")
	}

	registers := make([]*entity.CashRegister, 0, len(registerModels))
	for _, registerM := range registerModels {
		registers = append(registers, toCashRegisterDomain(registerM))
	}

	return registers, total, nil
}

func toCashRegisterDomain(data *model.CashRegisterModel) *entity.CashRegister {
	if data == nil {
		return nil
	}

	return &entity.CashRegister{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		DeliveryPersonID: data.DeliveryPersonID,
		InitialAmount:    data.InitialAmount,
		OpenedAt:         data.OpenedAt,
		ClosedAt:         data.ClosedAt,
		IsOpen:           data.IsOpen,
		TotalSales:       data.TotalSales,
		TotalCash:        data.TotalCash,
		TotalPOS:         data.TotalPOS,
		TotalTransfer:    data.TotalTransfer,
		ExpectedCash:     data.ExpectedCash,
		ActualCash:       data.ActualCash,
		Difference:       data.Difference,
		OrderCount:       data.OrderCount,
		Notes:            data.Notes,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}

func fromCashRegisterDomain(data *entity.CashRegister) *model.CashRegisterModel {
	if data == nil {
		return nil
	}

	return &model.CashRegisterModel{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		DeliveryPersonID: data.DeliveryPersonID,
		InitialAmount:    data.InitialAmount,
		OpenedAt:         data.OpenedAt,
		ClosedAt:         data.ClosedAt,
		IsOpen:           data.IsOpen,
		TotalSales:       data.TotalSales,
		TotalCash:        data.TotalCash,
		TotalPOS:         data.TotalPOS,
		TotalTransfer:    data.TotalTransfer,
		ExpectedCash:     data.ExpectedCash,
		ActualCash:       data.ActualCash,
		Difference:       data.Difference,
		OrderCount:       data.OrderCount,
		Notes:            data.Notes,
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
}
