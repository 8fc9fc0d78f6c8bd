package postgres

import (
	"context"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

const defaultOrderListLimit = 50

type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository is the constructor for orderRepository.
func NewOrderRepository(db *gorm.DB) repository.OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order together with its items.
func (repo *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	for _, item := range order.Items {
		if item.ID == uuid.Nil {
			item.ID = uuid.New()
		}
		item.OrderID = order.ID
	}
	orderM := fromOrderDomain(order)

	if err := repo.db.WithContext(ctx).Create(orderM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("order references an unknown restaurant, customer or delivery person")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create order")
	}

	order.CreatedAt = orderM.CreatedAt
	order.UpdatedAt = orderM.UpdatedAt

	return nil
}

func (repo *orderRepository) FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error) {
	var orderM model.OrderModel

	if err := repo.db.WithContext(ctx).
		Preload("Items").
		Where("restaurant_id = ? AND id = ?", restaurantID, id).
		First(&orderM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrOrderNotFound
		}

		return nil, errors.Wrap(err, "failed to find order by ID")
	}

	return toOrderDomain(&orderM), nil
}

// List returns one page of matching orders, newest first, and the total match count.
func (repo *orderRepository) List(ctx context.Context, filter repository.OrderFilter) ([]*entity.Order, int64, error) {
	var total int64
	if err := repo.applyFilter(repo.db.WithContext(ctx).Model(&model.OrderModel{}), filter).
		Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count orders")
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultOrderListLimit
	}

	var orderModels []*model.OrderModel
	if err := repo.applyFilter(repo.db.WithContext(ctx), filter).
		Preload("Items").
		Order("created_at DESC").
		Limit(limit).
		Offset(filter.Offset).
		Find(&orderModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list orders")
	}

	return toOrderDomains(orderModels), total, nil
}

func (repo *orderRepository) applyFilter(query *gorm.DB, filter repository.OrderFilter) *gorm.DB {
	query = query.Where("restaurant_id = ?", filter.RestaurantID)

	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", statusStrings(filter.Statuses))
	}
	if filter.Archived != nil {
		query = query.Where("is_archived = ?", *filter.Archived)
	}
	if filter.CustomerID != nil {
		query = query.Where("customer_id = ?", *filter.CustomerID)
	}
	if filter.OrderType != nil {
		query = query.Where("order_type = ?", filter.OrderType.String())
	}
	switch {
	case filter.DeliveryPersonID != nil:
		query = query.Where("delivery_person_id = ?", *filter.DeliveryPersonID)
	case filter.Unassigned:
		query = query.Where("delivery_person_id IS NULL")
	}
	if filter.CreatedFrom != nil {
		query = query.Where("created_at >= ?", *filter.CreatedFrom)
	}
	if filter.CreatedTo != nil {
		query = query.Where("created_at < ?", *filter.CreatedTo)
	}

	return query
}

// Update persists the mutable order fields. Items are immutable after creation.
func (repo *orderRepository) Update(ctx context.Context, order *entity.Order) error {
	result := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("restaurant_id = ? AND id = ?", order.RestaurantID, order.ID).
		Updates(map[string]any{
			"status":             order.Status.String(),
			"delivery_person_id": order.DeliveryPersonID,
			"is_archived":        order.IsArchived,
			"notes":              order.Notes,
			"updated_at":         order.UpdatedAt,
		})

	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return repository.ErrDeliveryPersonNotFound
		}

		return errors.Wrap(result.Error, "failed to update order")
	}
	if result.RowsAffected == 0 {
		return repository.ErrOrderNotFound
	}

	return nil
}

func (repo *orderRepository) CountByStatusSince(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, since time.Time, statuses []entity.OrderStatus) (int64, error) {
	var count int64

	if err := repo.db.WithContext(ctx).
		Model(&model.OrderModel{}).
		Where("restaurant_id = ? AND delivery_person_id = ?", restaurantID, deliveryPersonID).
		Where("created_at >= ?", since).
		Where("status IN ?", statusStrings(statuses)).
		Count(&count).Error; err != nil {
		return 0, errors.Wrap(err, "failed to count orders by status")
	}

	return count, nil
}

// ListCompletedBetween returns the person's completed orders created in [from, to).
func (repo *orderRepository) ListCompletedBetween(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, from, to time.Time) ([]*entity.Order, error) {
	var orderModels []*model.OrderModel

	if err := repo.db.WithContext(ctx).
		Where("restaurant_id = ? AND delivery_person_id = ?", restaurantID, deliveryPersonID).
		Where("status = ?", entity.OrderStatusCompleted.String()).
		Where("created_at >= ? AND created_at < ?", from, to).
		Order("created_at ASC").
		Find(&orderModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list completed orders")
	}

	return toOrderDomains(orderModels), nil
}

func (repo *orderRepository) AppendHistory(ctx context.Context, history *entity.OrderStatusHistory) error {
	if history.ID == uuid.Nil {
		history.ID = uuid.New()
	}

	if err := repo.db.WithContext(ctx).Create(fromOrderStatusHistoryDomain(history)).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to append order status history")
	}

	return nil
}

func (repo *orderRepository) ListHistory(ctx context.Context, orderID uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	var historyModels []*model.OrderStatusHistoryModel

	if err := repo.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("changed_at ASC").
		Find(&historyModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list order status history")
	}

	history := make([]*entity.OrderStatusHistory, 0, len(historyModels))
	for _, historyM := range historyModels {
		history = append(history, toOrderStatusHistoryDomain(historyM))
	}

	return history, nil
}

func statusStrings(statuses []entity.OrderStatus) []string {
	values := make([]string, 0, len(statuses))
	for _, status := range statuses {
		values = append(values, status.String())
	}

	return values
}

func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	order := &entity.Order{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		CustomerID:       data.CustomerID,
		CustomerName:     data.CustomerName,
		CustomerPhone:    data.CustomerPhone,
		CustomerEmail:    data.CustomerEmail,
		DeliveryAddress:  data.DeliveryAddress,
		TableNumber:      data.TableNumber,
		OrderType:        entity.OrderType(data.OrderType),
		Status:           entity.OrderStatus(data.Status),
		DeliveryPersonID: data.DeliveryPersonID,
		Total:            data.Total,
		PaymentMethod:    data.PaymentMethod,
		Notes:            data.Notes,
		IsArchived:       data.IsArchived,
		Items:            make([]*entity.OrderItem, 0, len(data.Items)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for i := range data.Items {
		item := &data.Items[i]
		order.Items = append(order.Items, &entity.OrderItem{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return order
}

func toOrderDomains(orderModels []*model.OrderModel) []*entity.Order {
	orders := make([]*entity.Order, 0, len(orderModels))
	for _, orderM := range orderModels {
		orders = append(orders, toOrderDomain(orderM))
	}

	return orders
}

func fromOrderDomain(data *entity.Order) *model.OrderModel {
	if data == nil {
		return nil
	}

	orderM := &model.OrderModel{
		ID:               data.ID,
		RestaurantID:     data.RestaurantID,
		CustomerID:       data.CustomerID,
		CustomerName:     data.CustomerName,
		CustomerPhone:    data.CustomerPhone,
		CustomerEmail:    data.CustomerEmail,
		DeliveryAddress:  data.DeliveryAddress,
		TableNumber:      data.TableNumber,
		OrderType:        data.OrderType.String(),
		Status:           data.Status.String(),
		DeliveryPersonID: data.DeliveryPersonID,
		Total:            data.Total,
		PaymentMethod:    data.PaymentMethod,
		Notes:            data.Notes,
		IsArchived:       data.IsArchived,
		Items:            make([]model.OrderItemModel, 0, len(data.Items)),
		CreatedAt:        data.CreatedAt,
		UpdatedAt:        data.UpdatedAt,
	}
	for _, item := range data.Items {
		orderM.Items = append(orderM.Items, model.OrderItemModel{
			ID:          item.ID,
			OrderID:     item.OrderID,
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			Subtotal:    item.Subtotal,
		})
	}

	return orderM
}

func toOrderStatusHistoryDomain(data *model.OrderStatusHistoryModel) *entity.OrderStatusHistory {
	if data == nil {
		return nil
	}

	return &entity.OrderStatusHistory{
		ID:         data.ID,
		OrderID:    data.OrderID,
		FromStatus: entity.OrderStatus(data.FromStatus),
		ToStatus:   entity.OrderStatus(data.ToStatus),
		ChangedBy:  data.ChangedBy,
		Note:       data.Note,
		ChangedAt:  data.ChangedAt,
	}
}

func fromOrderStatusHistoryDomain(data *entity.OrderStatusHistory) *model.OrderStatusHistoryModel {
	if data == nil {
		return nil
	}

	return &model.OrderStatusHistoryModel{
		ID:         data.ID,
		OrderID:    data.OrderID,
		FromStatus: data.FromStatus.String(),
		ToStatus:   data.ToStatus.String(),
		ChangedBy:  data.ChangedBy,
		Note:       data.Note,
		ChangedAt:  data.ChangedAt,
	}
}
