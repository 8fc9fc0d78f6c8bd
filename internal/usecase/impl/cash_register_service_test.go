package impl

import (
	"context"
	"testing"
	"time"

	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	mockRepo "comanda/internal/mocks/repository"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cashRegisterFixtures struct {
	service      usecase.CashRegisterUsecase
	registerRepo *mockRepo.MockCashRegisterRepository
	orderRepo    *mockRepo.MockOrderRepository
}

func createTestCashRegisterService(t *testing.T) cashRegisterFixtures {
	registerRepo := mockRepo.NewMockCashRegisterRepository(t)
	orderRepo := mockRepo.NewMockOrderRepository(t)

	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewCashRegisterRepository().Return(registerRepo).Maybe()
	factory.EXPECT().NewOrderRepository().Return(orderRepo).Maybe()

	svc := NewCashRegisterService(CashRegisterServiceParams{
		TxManager:        inlineTxManager(t, factory),
		CashRegisterRepo: registerRepo,
		OrderRepo:        orderRepo,
		Clock:            fixedClock(t, testNow),
		Logger:           discardLogger(),
	})

	return cashRegisterFixtures{service: svc, registerRepo: registerRepo, orderRepo: orderRepo}
}

func openRegister(restaurantID, personID uuid.UUID, initial string, openedAt time.Time) *entity.CashRegister {
	return &entity.CashRegister{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		DeliveryPersonID: personID,
		InitialAmount:    decimal.RequireFromString(initial),
		OpenedAt:         openedAt,
		IsOpen:           true,
	}
}

func completedOrder(total, paymentMethod string) *entity.Order {
	return &entity.Order{
		ID:            uuid.New(),
		Status:        entity.OrderStatusCompleted,
		Total:         decimal.RequireFromString(total),
		PaymentMethod: paymentMethod,
	}
}

func TestCashRegisterService_Open(t *testing.T) {
	restaurantID, personID := uuid.New(), uuid.New()

	t.Run("opens a session", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(nil, repository.ErrCashRegisterNotFound).Once()
		fx.registerRepo.EXPECT().Create(ctx, mock.AnythingOfType("*entity.CashRegister")).Return(nil).Once()

		register, err := fx.service.Open(ctx, restaurantID, personID, &usecase.OpenCashRegisterInput{InitialAmount: decimal.NewFromInt(100)})
		require.NoError(t, err)
		assert.True(t, register.IsOpen)
		assert.Equal(t, testNow, register.OpenedAt)
		assert.Equal(t, "100", register.InitialAmount.String())
	})

	t.Run("second open is rejected", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).
			Return(openRegister(restaurantID, personID, "20", testNow.Add(-time.Hour)), nil).Once()

		_, err := fx.service.Open(ctx, restaurantID, personID, &usecase.OpenCashRegisterInput{InitialAmount: decimal.NewFromInt(100)})
		assert.ErrorIs(t, err, domainerrors.ErrCashRegisterAlreadyOpen)
		fx.registerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("racing open caught by the unique index", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(nil, repository.ErrCashRegisterNotFound).Once()
		fx.registerRepo.EXPECT().Create(ctx, mock.Anything).Return(repository.ErrCashRegisterAlreadyOpen).Once()

		_, err := fx.service.Open(ctx, restaurantID, personID, &usecase.OpenCashRegisterInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCashRegisterAlreadyOpen)
	})

	t.Run("negative float", func(t *testing.T) {
		fx := createTestCashRegisterService(t)

		_, err := fx.service.Open(context.Background(), restaurantID, personID, &usecase.OpenCashRegisterInput{InitialAmount: decimal.NewFromInt(-1)})
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	})
}

func TestCashRegisterService_Close(t *testing.T) {
	restaurantID, personID := uuid.New(), uuid.New()
	openedAt := testNow.Add(-4 * time.Hour)

	t.Run("expected cash is float plus cash sales", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()
		register := openRegister(restaurantID, personID, "100", openedAt)
		counted := decimal.RequireFromString("145")

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(register, nil).Once()
		fx.orderRepo.EXPECT().CountByStatusSince(ctx, restaurantID, personID, openedAt, entity.ActiveOrderStatuses).Return(int64(0), nil).Once()
		fx.orderRepo.EXPECT().ListCompletedBetween(ctx, restaurantID, personID, openedAt, testNow).
			Return([]*entity.Order{completedOrder("50", "cash")}, nil).Once()
		fx.registerRepo.EXPECT().Update(ctx, register).Return(nil).Once()

		closed, err := fx.service.Close(ctx, restaurantID, personID, &usecase.CloseCashRegisterInput{ActualCash: &counted, Notes: " short 5 "})
		require.NoError(t, err)
		assert.False(t, closed.IsOpen)
		require.NotNil(t, closed.ClosedAt)
		assert.Equal(t, testNow, *closed.ClosedAt)
		assert.True(t, decimal.NewFromInt(150).Equal(closed.ExpectedCash), closed.ExpectedCash.String())
		assert.True(t, decimal.NewFromInt(50).Equal(closed.TotalCash))
		assert.Equal(t, 1, closed.OrderCount)
		require.NotNil(t, closed.Difference)
		assert.True(t, decimal.NewFromInt(-5).Equal(*closed.Difference))
		assert.Equal(t, "short 5", closed.Notes)
	})

	t.Run("payment buckets", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()
		register := openRegister(restaurantID, personID, "0", openedAt)

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(register, nil).Once()
		fx.orderRepo.EXPECT().CountByStatusSince(ctx, restaurantID, personID, openedAt, entity.ActiveOrderStatuses).Return(int64(0), nil).Once()
		fx.orderRepo.EXPECT().ListCompletedBetween(ctx, restaurantID, personID, openedAt, testNow).
			Return([]*entity.Order{
				completedOrder("10", " Efectivo "),
				completedOrder("20", "Tarjeta de crédito"),
				completedOrder("30", "transferencia"),
				completedOrder("5", "bitcoin"),
			}, nil).Once()
		fx.registerRepo.EXPECT().Update(ctx, register).Return(nil).Once()

		closed, err := fx.service.Close(ctx, restaurantID, personID, &usecase.CloseCashRegisterInput{})
		require.NoError(t, err)
		assert.True(t, decimal.NewFromInt(65).Equal(closed.TotalSales))
		assert.True(t, decimal.NewFromInt(10).Equal(closed.TotalCash))
		assert.True(t, decimal.NewFromInt(20).Equal(closed.TotalPOS))
		assert.True(t, decimal.NewFromInt(35).Equal(closed.TotalTransfer))
		assert.Nil(t, closed.ActualCash)
		assert.Nil(t, closed.Difference)
	})

	t.Run("active orders block closing", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()
		register := openRegister(restaurantID, personID, "100", openedAt)

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(register, nil).Once()
		fx.orderRepo.EXPECT().CountByStatusSince(ctx, restaurantID, personID, openedAt, entity.ActiveOrderStatuses).Return(int64(1), nil).Once()

		_, err := fx.service.Close(ctx, restaurantID, personID, &usecase.CloseCashRegisterInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCashRegisterActiveOrders)
		assert.True(t, register.IsOpen)
		fx.registerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("nothing open", func(t *testing.T) {
		fx := createTestCashRegisterService(t)
		ctx := context.Background()

		fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(nil, repository.ErrCashRegisterNotFound).Once()

		_, err := fx.service.Close(ctx, restaurantID, personID, &usecase.CloseCashRegisterInput{})
		assert.ErrorIs(t, err, domainerrors.ErrCashRegisterNotFound)
	})
}

func TestCashRegisterService_Current(t *testing.T) {
	fx := createTestCashRegisterService(t)
	ctx := context.Background()
	restaurantID, personID := uuid.New(), uuid.New()
	openedAt := testNow.Add(-time.Hour)
	register := openRegister(restaurantID, personID, "100", openedAt)

	fx.registerRepo.EXPECT().FindOpen(ctx, restaurantID, personID).Return(register, nil).Once()
	fx.orderRepo.EXPECT().ListCompletedBetween(ctx, restaurantID, personID, openedAt, testNow).
		Return([]*entity.Order{completedOrder("50", "cash"), completedOrder("12", "pos")}, nil).Once()
	fx.orderRepo.EXPECT().CountByStatusSince(ctx, restaurantID, personID, openedAt, entity.ActiveOrderStatuses).Return(int64(2), nil).Once()

	status, err := fx.service.Current(ctx, restaurantID, personID)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(status.ExpectedCash))
	assert.Equal(t, 2, status.Totals.OrderCount)
	assert.Equal(t, int64(2), status.ActiveOrders)
	assert.True(t, register.IsOpen)
}

func TestCashRegisterService_History(t *testing.T) {
	fx := createTestCashRegisterService(t)
	ctx := context.Background()
	restaurantID, personID := uuid.New(), uuid.New()

	fx.registerRepo.EXPECT().List(ctx, repository.CashRegisterFilter{
		RestaurantID:     restaurantID,
		DeliveryPersonID: &personID,
		OnlyClosed:       true,
		Limit:            10,
		Offset:           10,
	}).Return([]*entity.CashRegister{}, int64(11), nil).Once()

	page, err := fx.service.History(ctx, restaurantID, &usecase.CashRegisterHistoryInput{DeliveryPersonID: &personID, Page: 2, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(11), page.Total)
	assert.Equal(t, 2, page.Page)
}
