package impl

import (
	"context"
	"testing"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	mockRepo "comanda/internal/mocks/repository"
	mockService "comanda/internal/mocks/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderServiceFixtures struct {
	service        usecase.OrderUsecase
	restaurantRepo *mockRepo.MockRestaurantRepository
	orderRepo      *mockRepo.MockOrderRepository
	productRepo    *mockRepo.MockProductRepository
	deliveryRepo   *mockRepo.MockDeliveryPersonRepository
	publisher      *mockService.MockOrderEventPublisher
}

func createTestOrderService(t *testing.T) orderServiceFixtures {
	restaurantRepo := mockRepo.NewMockRestaurantRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)
	productRepo := mockRepo.NewMockProductRepository(t)
	deliveryRepo := mockRepo.NewMockDeliveryPersonRepository(t)
	publisher := mockService.NewMockOrderEventPublisher(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	svc := NewOrderService(OrderServiceParams{
		TxManager:          inlineTxManager(t, factory),
		RestaurantRepo:     restaurantRepo,
		OrderRepo:          orderRepo,
		ProductRepo:        productRepo,
		DeliveryPersonRepo: deliveryRepo,
		Publisher:          publisher,
		Clock:              fixedClock(t, testNow),
		Logger:             discardLogger(),
	})

	return orderServiceFixtures{
		service:        svc,
		restaurantRepo: restaurantRepo,
		orderRepo:      orderRepo,
		productRepo:    productRepo,
		deliveryRepo:   deliveryRepo,
		publisher:      publisher,
	}
}

func staffActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: entity.RoleEmployee}
}

func deliveryActor() usecase.Actor {
	return usecase.Actor{ID: uuid.New(), Role: entity.RoleDelivery}
}

func orderIn(status entity.OrderStatus, orderType entity.OrderType) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		RestaurantID:  uuid.New(),
		OrderType:     orderType,
		Status:        status,
		Total:         decimal.NewFromInt(50),
		PaymentMethod: "cash",
	}
}

func TestOrderService_CreateOrder(t *testing.T) {
	restaurantID := uuid.New()
	pizza := &entity.Product{ID: uuid.New(), RestaurantID: restaurantID, Name: "Pizza", Price: decimal.RequireFromString("12.50"), IsAvailable: true}
	soda := &entity.Product{ID: uuid.New(), RestaurantID: restaurantID, Name: "Soda", Price: decimal.RequireFromString("2.00"), IsAvailable: true}
	openRestaurant := &entity.Restaurant{ID: restaurantID, Identifier: "pizzeria", IsActive: true}

	input := func() *usecase.CreateOrderInput {
		return &usecase.CreateOrderInput{
			RestaurantID:    restaurantID,
			CustomerName:    "Ana",
			CustomerPhone:   "555-0100",
			DeliveryAddress: "Calle 1",
			OrderType:       entity.OrderTypeDelivery,
			PaymentMethod:   "Efectivo",
			Items: []usecase.OrderItemInput{
				{ProductID: pizza.ID, Quantity: 2},
				{ProductID: soda.ID, Quantity: 1},
			},
			Actor: usecase.Actor{ID: uuid.New(), Role: entity.RoleCustomer},
		}
	}

	t.Run("prices from catalog and starts pending", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(openRestaurant, nil).Once()
		fx.productRepo.EXPECT().FindByIDs(ctx, restaurantID, []uuid.UUID{pizza.ID, soda.ID}).
			Return([]*entity.Product{pizza, soda}, nil).Once()
		fx.orderRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Order")).Return(nil).Once()
		fx.orderRepo.EXPECT().AppendHistory(ctx, mock.AnythingOfType("*entity.OrderStatusHistory")).
			Run(func(_ context.Context, history *entity.OrderStatusHistory) {
				assert.Equal(t, entity.OrderStatus(""), history.FromStatus)
				assert.Equal(t, entity.OrderStatusPending, history.ToStatus)
			}).
			Return(nil).Once()
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
			Run(func(_ context.Context, event *service.OrderEvent) {
				assert.Equal(t, service.OrderEventCreated, event.Type)
				assert.Equal(t, "27.00", event.Total)
			}).
			Return(nil).Once()

		order, err := fx.service.CreateOrder(ctx, input())
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		assert.Equal(t, "27", order.Total.String())
		require.Len(t, order.Items, 2)
		assert.Equal(t, order.ID, order.Items[0].OrderID)
		assert.Equal(t, "25", order.Items[0].Subtotal.String())
	})

	t.Run("unknown product of another tenant", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(openRestaurant, nil).Once()
		fx.productRepo.EXPECT().FindByIDs(ctx, restaurantID, mock.Anything).Return([]*entity.Product{pizza}, nil).Once()

		_, err := fx.service.CreateOrder(ctx, input())
		assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	})

	t.Run("unavailable product", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		soldOut := *soda
		soldOut.IsAvailable = false

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(openRestaurant, nil).Once()
		fx.productRepo.EXPECT().FindByIDs(ctx, restaurantID, mock.Anything).Return([]*entity.Product{pizza, &soldOut}, nil).Once()

		_, err := fx.service.CreateOrder(ctx, input())
		assert.ErrorIs(t, err, domainerrors.ErrProductUnavailable)
	})

	t.Run("deactivated restaurant takes no orders", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		closed := *openRestaurant
		closed.IsActive = false

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(&closed, nil).Once()

		_, err := fx.service.CreateOrder(ctx, input())
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantInactive)
		fx.productRepo.AssertNotCalled(t, "FindByIDs", mock.Anything, mock.Anything, mock.Anything)
		fx.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		fx.publisher.AssertNotCalled(t, "PublishOrderEvent", mock.Anything, mock.Anything)
	})

	t.Run("unknown restaurant", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(nil, repository.ErrRestaurantNotFound).Once()

		_, err := fx.service.CreateOrder(ctx, input())
		assert.ErrorIs(t, err, domainerrors.ErrRestaurantNotFound)
	})

	t.Run("delivery without address", func(t *testing.T) {
		fx := createTestOrderService(t)
		in := input()
		in.DeliveryAddress = " "

		_, err := fx.service.CreateOrder(context.Background(), in)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("publish failure is swallowed", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()

		fx.restaurantRepo.EXPECT().FindByID(ctx, restaurantID).Return(openRestaurant, nil).Once()
		fx.productRepo.EXPECT().FindByIDs(ctx, restaurantID, mock.Anything).Return([]*entity.Product{pizza, soda}, nil).Once()
		fx.orderRepo.EXPECT().Create(ctx, mock.Anything).Return(nil).Once()
		fx.orderRepo.EXPECT().AppendHistory(ctx, mock.Anything).Return(nil).Once()
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(errors.New("broker down")).Once()

		order, err := fx.service.CreateOrder(ctx, input())
		require.NoError(t, err)
		assert.NotNil(t, order)
	})
}

func TestOrderService_UpdateStatus(t *testing.T) {
	t.Run("accepted transition records history and publishes", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusPending, entity.OrderTypeTakeaway)
		actor := staffActor()

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil).Once()
		fx.orderRepo.EXPECT().AppendHistory(ctx, mock.AnythingOfType("*entity.OrderStatusHistory")).
			Run(func(_ context.Context, history *entity.OrderStatusHistory) {
				assert.Equal(t, entity.OrderStatusPending, history.FromStatus)
				assert.Equal(t, entity.OrderStatusPreparing, history.ToStatus)
				assert.Equal(t, actor.String(), history.ChangedBy)
				assert.Equal(t, "on it", history.Note)
				assert.Equal(t, testNow, history.ChangedAt)
			}).
			Return(nil).Once()
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
			Run(func(_ context.Context, event *service.OrderEvent) {
				assert.Equal(t, service.OrderEventStatusChanged, event.Type)
				assert.Equal(t, "pending", event.FromStatus)
				assert.Equal(t, "preparing", event.ToStatus)
			}).
			Return(nil).Once()

		updated, err := fx.service.UpdateStatus(ctx, order.RestaurantID, order.ID, actor, &usecase.UpdateStatusInput{Status: entity.OrderStatusPreparing, Note: " on it "})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusPreparing, updated.Status)
	})

	t.Run("transition outside the table leaves the order unchanged", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusPending, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.UpdateStatus(ctx, order.RestaurantID, order.ID, staffActor(), &usecase.UpdateStatusInput{Status: entity.OrderStatusCompleted})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), `from "pending" to "completed"`)
		assert.Equal(t, entity.OrderStatusPending, order.Status)
		fx.orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("delivered only for dine-in", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusDelivering, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.UpdateStatus(ctx, order.RestaurantID, order.ID, staffActor(), &usecase.UpdateStatusInput{Status: entity.OrderStatusDelivered})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
	})

	t.Run("unknown order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		restaurantID, id := uuid.New(), uuid.New()

		fx.orderRepo.EXPECT().FindByID(ctx, restaurantID, id).Return(nil, repository.ErrOrderNotFound).Once()

		_, err := fx.service.UpdateStatus(ctx, restaurantID, id, staffActor(), &usecase.UpdateStatusInput{Status: entity.OrderStatusPreparing})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
	})
}

func TestOrderService_UpdateDeliveryStatus(t *testing.T) {
	t.Run("preparing to completed is rejected", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		actor := deliveryActor()
		order := orderIn(entity.OrderStatusPreparing, entity.OrderTypeDelivery)
		order.DeliveryPersonID = &actor.ID

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.UpdateDeliveryStatus(ctx, order.RestaurantID, order.ID, actor, &usecase.UpdateStatusInput{Status: entity.OrderStatusCompleted})
		require.ErrorIs(t, err, domainerrors.ErrInvalidStatusTransition)
		assert.Contains(t, err.Error(), `from "preparing" to "completed"`)
		assert.Equal(t, entity.OrderStatusPreparing, order.Status)
	})

	t.Run("unassigned order is claimed on pickup", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		actor := deliveryActor()
		order := orderIn(entity.OrderStatusPreparing, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil).Once()
		fx.orderRepo.EXPECT().AppendHistory(ctx, mock.Anything).Return(nil).Once()
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.Anything).Return(nil).Once()

		updated, err := fx.service.UpdateDeliveryStatus(ctx, order.RestaurantID, order.ID, actor, &usecase.UpdateStatusInput{Status: entity.OrderStatusDelivering})
		require.NoError(t, err)
		assert.Equal(t, entity.OrderStatusDelivering, updated.Status)
		require.NotNil(t, updated.DeliveryPersonID)
		assert.Equal(t, actor.ID, *updated.DeliveryPersonID)
	})

	t.Run("order of another delivery person", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		other := uuid.New()
		order := orderIn(entity.OrderStatusDelivering, entity.OrderTypeDelivery)
		order.DeliveryPersonID = &other

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.UpdateDeliveryStatus(ctx, order.RestaurantID, order.ID, deliveryActor(), &usecase.UpdateStatusInput{Status: entity.OrderStatusCompleted})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotAssigned)
	})

	t.Run("unassigned order cannot be completed", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusDelivering, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.UpdateDeliveryStatus(ctx, order.RestaurantID, order.ID, deliveryActor(), &usecase.UpdateStatusInput{Status: entity.OrderStatusCompleted})
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotAssigned)
	})
}

func TestOrderService_AssignDeliveryPerson(t *testing.T) {
	t.Run("assigns an active person", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusPreparing, entity.OrderTypeDelivery)
		person := &entity.DeliveryPerson{ID: uuid.New(), RestaurantID: order.RestaurantID, IsActive: true}

		fx.deliveryRepo.EXPECT().FindByID(ctx, order.RestaurantID, person.ID).Return(person, nil).Once()
		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil).Once()
		fx.publisher.EXPECT().PublishOrderEvent(ctx, mock.AnythingOfType("*service.OrderEvent")).
			Run(func(_ context.Context, event *service.OrderEvent) {
				assert.Equal(t, service.OrderEventAssigned, event.Type)
				assert.Equal(t, person.ID.String(), event.DeliveryPersonID)
			}).
			Return(nil).Once()

		updated, err := fx.service.AssignDeliveryPerson(ctx, order.RestaurantID, order.ID, person.ID, staffActor())
		require.NoError(t, err)
		assert.True(t, updated.IsAssignedTo(person.ID))
	})

	t.Run("inactive person", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		restaurantID := uuid.New()
		person := &entity.DeliveryPerson{ID: uuid.New(), RestaurantID: restaurantID}

		fx.deliveryRepo.EXPECT().FindByID(ctx, restaurantID, person.ID).Return(person, nil).Once()

		_, err := fx.service.AssignDeliveryPerson(ctx, restaurantID, uuid.New(), person.ID, staffActor())
		assert.ErrorIs(t, err, domainerrors.ErrDeliveryPersonInactive)
	})
}

func TestOrderService_ArchiveOrder(t *testing.T) {
	t.Run("active order cannot be archived", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusDelivering, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()

		_, err := fx.service.ArchiveOrder(ctx, order.RestaurantID, order.ID)
		assert.ErrorIs(t, err, domainerrors.ErrOrderNotArchivable)
	})

	t.Run("completed order", func(t *testing.T) {
		fx := createTestOrderService(t)
		ctx := context.Background()
		order := orderIn(entity.OrderStatusCompleted, entity.OrderTypeDelivery)

		fx.orderRepo.EXPECT().FindByID(ctx, order.RestaurantID, order.ID).Return(order, nil).Once()
		fx.orderRepo.EXPECT().Update(ctx, order).Return(nil).Once()

		archived, err := fx.service.ArchiveOrder(ctx, order.RestaurantID, order.ID)
		require.NoError(t, err)
		assert.True(t, archived.IsArchived)
	})
}

func TestOrderService_ListAssignedOrders_DefaultsToActive(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	restaurantID, personID := uuid.New(), uuid.New()

	fx.orderRepo.EXPECT().List(ctx, repository.OrderFilter{
		RestaurantID:     restaurantID,
		DeliveryPersonID: &personID,
		Statuses:         entity.ActiveOrderStatuses,
		Limit:            usecase.DefaultPageSize,
	}).Return([]*entity.Order{}, int64(0), nil).Once()

	page, err := fx.service.ListAssignedOrders(ctx, restaurantID, personID, nil)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, usecase.DefaultPageSize, page.PageSize)
}

func TestOrderService_ListOrders_Pagination(t *testing.T) {
	fx := createTestOrderService(t)
	ctx := context.Background()
	restaurantID := uuid.New()

	fx.orderRepo.EXPECT().List(ctx, repository.OrderFilter{
		RestaurantID: restaurantID,
		Limit:        usecase.MaxPageSize,
		Offset:       2 * usecase.MaxPageSize,
	}).Return([]*entity.Order{}, int64(250), nil).Once()

	page, err := fx.service.ListOrders(ctx, restaurantID, &usecase.OrderListInput{Page: 3, PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, int64(250), page.Total)
	assert.Equal(t, 3, page.Page)
}

func TestNormalizePage(t *testing.T) {
	tests := []struct {
		name             string
		page, pageSize   int
		wantPage, wantPS int
	}{
		{name: "defaults", wantPage: 1, wantPS: usecase.DefaultPageSize},
		{name: "negative page", page: -3, pageSize: 10, wantPage: 1, wantPS: 10},
		{name: "capped size", page: 2, pageSize: 500, wantPage: 2, wantPS: usecase.MaxPageSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, pageSize := normalizePage(tt.page, tt.pageSize)
			assert.Equal(t, tt.wantPage, page)
			assert.Equal(t, tt.wantPS, pageSize)
		})
	}
}
