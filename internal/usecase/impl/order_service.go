package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type orderService struct {
	txManager          repository.TransactionManager
	restaurantRepo     repository.RestaurantRepository
	orderRepo          repository.OrderRepository
	productRepo        repository.ProductRepository
	deliveryPersonRepo repository.DeliveryPersonRepository
	publisher          service.OrderEventPublisher
	clock              service.Clock
	logger             *slog.Logger
}

// OrderServiceParams holds dependencies for OrderService, injected by Fx.
type OrderServiceParams struct {
	fx.In

	TxManager          repository.TransactionManager
	RestaurantRepo     repository.RestaurantRepository
	OrderRepo          repository.OrderRepository
	ProductRepo        repository.ProductRepository
	DeliveryPersonRepo repository.DeliveryPersonRepository
	Publisher          service.OrderEventPublisher
	Clock              service.Clock
	Logger             *slog.Logger
}

// NewOrderService is the constructor for orderService.
func NewOrderService(params OrderServiceParams) usecase.OrderUsecase {
	return &orderService{
		txManager:          params.TxManager,
		restaurantRepo:     params.RestaurantRepo,
		orderRepo:          params.OrderRepo,
		productRepo:        params.ProductRepo,
		deliveryPersonRepo: params.DeliveryPersonRepo,
		publisher:          params.Publisher,
		clock:              params.Clock,
		logger:             params.Logger,
	}
}

func (srv *orderService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateOrder prices every line from the catalog, so the client never supplies
// a price or a total. Deactivated restaurants take no orders.
func (srv *orderService) CreateOrder(ctx context.Context, input *usecase.CreateOrderInput) (*entity.Order, error) {
	if err := validateOrderInput(input); err != nil {
		return nil, err
	}

	if _, err := requireActiveRestaurant(ctx, srv.restaurantRepo, input.RestaurantID); err != nil {
		return nil, err
	}

	items, err := srv.priceItems(ctx, input.RestaurantID, input.Items)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now().UTC()
	order := &entity.Order{
		ID:              uuid.New(),
		RestaurantID:    input.RestaurantID,
		CustomerID:      input.CustomerID,
		CustomerName:    strings.TrimSpace(input.CustomerName),
		CustomerPhone:   strings.TrimSpace(input.CustomerPhone),
		CustomerEmail:   strings.ToLower(strings.TrimSpace(input.CustomerEmail)),
		DeliveryAddress: strings.TrimSpace(input.DeliveryAddress),
		TableNumber:     strings.TrimSpace(input.TableNumber),
		OrderType:       input.OrderType,
		Status:          entity.OrderStatusPending,
		PaymentMethod:   strings.TrimSpace(input.PaymentMethod),
		Notes:           strings.TrimSpace(input.Notes),
		Items:           items,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	for _, item := range order.Items {
		item.OrderID = order.ID
	}
	order.RecalculateTotal()

	history := &entity.OrderStatusHistory{
		ID:        uuid.New(),
		OrderID:   order.ID,
		ToStatus:  entity.OrderStatusPending,
		ChangedBy: input.Actor.String(),
		ChangedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()
		if err := orderRepo.Create(ctx, order); err != nil {
			return errors.Wrap(err, "failed to create order")
		}

		return errors.Wrap(orderRepo.AppendHistory(ctx, history), "failed to record order history")
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order created",
		slog.String("orderID", order.ID.String()),
		slog.String("restaurantID", order.RestaurantID.String()),
		slog.String("total", order.Total.String()),
	)
	srv.publish(ctx, service.OrderEventCreated, order, "")

	return order, nil
}

func (srv *orderService) GetOrder(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.orderRepo.FindByID(ctx, restaurantID, id)
	if errors.Is(err, repository.ErrOrderNotFound) {
		return nil, domainerrors.ErrOrderNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find order")
	}

	return order, nil
}

func (srv *orderService) ListOrders(ctx context.Context, restaurantID uuid.UUID, input *usecase.OrderListInput) (*usecase.OrderPage, error) {
	return srv.listOrders(ctx, repository.OrderFilter{RestaurantID: restaurantID}, input)
}

func (srv *orderService) ListCustomerOrders(ctx context.Context, restaurantID, customerID uuid.UUID, input *usecase.OrderListInput) (*usecase.OrderPage, error) {
	return srv.listOrders(ctx, repository.OrderFilter{RestaurantID: restaurantID, CustomerID: &customerID}, input)
}

func (srv *orderService) ListAssignedOrders(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *usecase.OrderListInput) (*usecase.OrderPage, error) {
	listInput := orderListInput(input)
	if len(listInput.Statuses) == 0 {
		listInput.Statuses = entity.ActiveOrderStatuses
	}

	return srv.listOrders(ctx, repository.OrderFilter{RestaurantID: restaurantID, DeliveryPersonID: &deliveryPersonID}, &listInput)
}

func (srv *orderService) ListAvailableOrders(ctx context.Context, restaurantID uuid.UUID, input *usecase.OrderListInput) (*usecase.OrderPage, error) {
	listInput := orderListInput(input)
	listInput.Statuses = []entity.OrderStatus{entity.OrderStatusPreparing}

	deliveryType := entity.OrderTypeDelivery

	return srv.listOrders(ctx, repository.OrderFilter{
		RestaurantID: restaurantID,
		OrderType:    &deliveryType,
		Unassigned:   true,
	}, &listInput)
}

func (srv *orderService) UpdateStatus(ctx context.Context, restaurantID, id uuid.UUID, actor usecase.Actor, input *usecase.UpdateStatusInput) (*entity.Order, error) {
	return srv.transition(ctx, restaurantID, id, actor, input, entity.StaffTransitions, nil)
}

// UpdateDeliveryStatus only touches orders of the actor. An unassigned order is
// claimed when it leaves preparing.
func (srv *orderService) UpdateDeliveryStatus(ctx context.Context, restaurantID, id uuid.UUID, actor usecase.Actor, input *usecase.UpdateStatusInput) (*entity.Order, error) {
	return srv.transition(ctx, restaurantID, id, actor, input, entity.DeliveryTransitions, func(order *entity.Order, from entity.OrderStatus) error {
		if order.IsAssignedTo(actor.ID) {
			return nil
		}
		if order.DeliveryPersonID == nil && from == entity.OrderStatusPreparing && order.Status == entity.OrderStatusDelivering {
			order.DeliveryPersonID = &actor.ID

			return nil
		}

		return domainerrors.ErrOrderNotAssigned
	})
}

func (srv *orderService) transition(
	ctx context.Context,
	restaurantID, id uuid.UUID,
	actor usecase.Actor,
	input *usecase.UpdateStatusInput,
	table entity.TransitionTable,
	authorize func(order *entity.Order, from entity.OrderStatus) error,
) (*entity.Order, error) {
	var (
		updated *entity.Order
		from    entity.OrderStatus
	)

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		orderRepo := txRepoFactory.NewOrderRepository()

		order, err := orderRepo.FindByID(ctx, restaurantID, id)
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}
		if err != nil {
			return errors.Wrap(err, "failed to find order")
		}

		from = order.Status
		history, err := order.Transition(table, input.Status, actor.String(), input.Note, srv.clock.Now().UTC())
		if err != nil {
			return domainerrors.NewInvalidTransitionError(err)
		}

		// Runs after the table check so an illegal move reports the transition error.
		if authorize != nil {
			if err := authorize(order, from); err != nil {
				return err
			}
		}

		if err := orderRepo.Update(ctx, order); err != nil {
			return errors.Wrap(err, "failed to update order")
		}
		if err := orderRepo.AppendHistory(ctx, history); err != nil {
			return errors.Wrap(err, "failed to record order history")
		}

		updated = order

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Order status changed",
		slog.String("orderID", updated.ID.String()),
		slog.String("from", from.String()),
		slog.String("to", updated.Status.String()),
		slog.String("actor", actor.String()),
	)
	srv.publish(ctx, service.OrderEventStatusChanged, updated, from)

	return updated, nil
}

func (srv *orderService) AssignDeliveryPerson(ctx context.Context, restaurantID, id, deliveryPersonID uuid.UUID, actor usecase.Actor) (*entity.Order, error) {
	person, err := srv.deliveryPersonRepo.FindByID(ctx, restaurantID, deliveryPersonID)
	if errors.Is(err, repository.ErrDeliveryPersonNotFound) {
		return nil, domainerrors.ErrDeliveryPersonNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find delivery person")
	}
	if !person.IsActive {
		return nil, domainerrors.ErrDeliveryPersonInactive
	}

	order, err := srv.GetOrder(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if order.Status.IsTerminal() {
		return nil, domainerrors.NewValidationError("cannot assign a %s order", order.Status)
	}

	order.DeliveryPersonID = &person.ID
	order.UpdatedAt = srv.clock.Now().UTC()
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to assign delivery person")
	}

	srv.log(ctx).Info("Delivery person assigned",
		slog.String("orderID", order.ID.String()),
		slog.String("deliveryPersonID", person.ID.String()),
		slog.String("actor", actor.String()),
	)
	srv.publish(ctx, service.OrderEventAssigned, order, "")

	return order, nil
}

func (srv *orderService) ArchiveOrder(ctx context.Context, restaurantID, id uuid.UUID) (*entity.Order, error) {
	order, err := srv.GetOrder(ctx, restaurantID, id)
	if err != nil {
		return nil, err
	}
	if !order.Status.IsTerminal() {
		return nil, domainerrors.ErrOrderNotArchivable
	}
	if order.IsArchived {
		return order, nil
	}

	order.IsArchived = true
	order.UpdatedAt = srv.clock.Now().UTC()
	if err := srv.orderRepo.Update(ctx, order); err != nil {
		return nil, errors.Wrap(err, "failed to archive order")
	}

	return order, nil
}

func (srv *orderService) GetStatusHistory(ctx context.Context, restaurantID, id uuid.UUID) ([]*entity.OrderStatusHistory, error) {
	if _, err := srv.GetOrder(ctx, restaurantID, id); err != nil {
		return nil, err
	}

	history, err := srv.orderRepo.ListHistory(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list order history")
	}

	return history, nil
}

func (srv *orderService) priceItems(ctx context.Context, restaurantID uuid.UUID, lines []usecase.OrderItemInput) ([]*entity.OrderItem, error) {
	ids := make([]uuid.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.ProductID)
	}

	products, err := srv.productRepo.FindByIDs(ctx, restaurantID, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load order products")
	}

	byID := make(map[uuid.UUID]*entity.Product, len(products))
	for _, product := range products {
		byID[product.ID] = product
	}

	items := make([]*entity.OrderItem, 0, len(lines))
	for _, line := range lines {
		product, ok := byID[line.ProductID]
		if !ok {
			return nil, domainerrors.ErrProductNotFound.WithDetails(line.ProductID.String())
		}
		if !product.IsAvailable {
			return nil, domainerrors.ErrProductUnavailable.WithMessage(product.Name + " is not available")
		}

		items = append(items, entity.NewOrderItem(product, line.Quantity))
	}

	return items, nil
}

// publish is best effort: the change is already committed.
func (srv *orderService) publish(ctx context.Context, eventType service.OrderEventType, order *entity.Order, from entity.OrderStatus) {
	event := &service.OrderEvent{
		RequestID:    deliverycontext.GetRequestIDFromContext(ctx),
		Type:         eventType,
		OrderID:      order.ID.String(),
		RestaurantID: order.RestaurantID.String(),
		OrderType:    order.OrderType.String(),
		FromStatus:   from.String(),
		ToStatus:     order.Status.String(),
		Total:        order.Total.StringFixed(2),
		OccurredAt:   srv.clock.Now().UTC(),
	}
	if order.CustomerID != nil {
		event.CustomerID = order.CustomerID.String()
	}
	if order.DeliveryPersonID != nil {
		event.DeliveryPersonID = order.DeliveryPersonID.String()
	}

	if err := srv.publisher.PublishOrderEvent(ctx, event); err != nil {
		srv.log(ctx).Warn("Failed to publish order event",
			slog.String("type", string(eventType)),
			slog.String("orderID", event.OrderID),
			slog.Any("error", err),
		)
	}
}

func (srv *orderService) listOrders(ctx context.Context, filter repository.OrderFilter, input *usecase.OrderListInput) (*usecase.OrderPage, error) {
	listInput := orderListInput(input)
	page, pageSize := normalizePage(listInput.Page, listInput.PageSize)

	filter.Statuses = listInput.Statuses
	filter.Archived = listInput.Archived
	filter.Limit = pageSize
	filter.Offset = (page - 1) * pageSize

	orders, total, err := srv.orderRepo.List(ctx, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list orders")
	}

	return &usecase.OrderPage{Orders: orders, Total: total, Page: page, PageSize: pageSize}, nil
}

func orderListInput(input *usecase.OrderListInput) usecase.OrderListInput {
	if input == nil {
		return usecase.OrderListInput{}
	}

	return *input
}

// normalizePage clamps 1-based page numbers and page sizes.
func normalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = 1
	}
	switch {
	case pageSize <= 0:
		pageSize = usecase.DefaultPageSize
	case pageSize > usecase.MaxPageSize:
		pageSize = usecase.MaxPageSize
	}

	return page, pageSize
}

func validateOrderInput(input *usecase.CreateOrderInput) error {
	if !input.OrderType.IsValid() {
		return domainerrors.NewValidationError("unknown order type %q", input.OrderType)
	}
	if len(input.Items) == 0 {
		return domainerrors.NewValidationError("an order needs at least one item")
	}
	for _, item := range input.Items {
		if item.Quantity < 1 {
			return domainerrors.NewValidationError("quantity must be at least 1")
		}
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		return domainerrors.NewValidationError("customer name is required")
	}
	if input.OrderType == entity.OrderTypeDelivery && strings.TrimSpace(input.DeliveryAddress) == "" {
		return domainerrors.NewValidationError("delivery orders need an address")
	}
	if strings.TrimSpace(input.PaymentMethod) == "" {
		return domainerrors.NewValidationError("payment method is required")
	}

	return nil
}
