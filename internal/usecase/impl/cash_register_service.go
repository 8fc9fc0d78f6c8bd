package impl

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	deliverycontext "comanda/internal/delivery/context"
	"comanda/internal/domain/entity"
	domainerrors "comanda/internal/domain/errors"
	"comanda/internal/domain/repository"
	"comanda/internal/domain/service"
	"comanda/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
)

type cashRegisterService struct {
	txManager        repository.TransactionManager
	cashRegisterRepo repository.CashRegisterRepository
	orderRepo        repository.OrderRepository
	clock            service.Clock
	logger           *slog.Logger
}

// CashRegisterServiceParams holds dependencies for CashRegisterService, injected by Fx.
type CashRegisterServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	CashRegisterRepo repository.CashRegisterRepository
	OrderRepo        repository.OrderRepository
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewCashRegisterService is the constructor for cashRegisterService.
func NewCashRegisterService(params CashRegisterServiceParams) usecase.CashRegisterUsecase {
	return &cashRegisterService{
		txManager:        params.TxManager,
		cashRegisterRepo: params.CashRegisterRepo,
		orderRepo:        params.OrderRepo,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

func (srv *cashRegisterService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Open starts a session. The existence check runs in the transaction; a racing
// open is rejected by the partial unique index with the same error.
func (srv *cashRegisterService) Open(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *usecase.OpenCashRegisterInput) (*entity.CashRegister, error) {
	if input.InitialAmount.IsNegative() {
		return nil, domainerrors.NewValidationError("initial amount cannot be negative")
	}

	now := srv.clock.Now().UTC()
	register := &entity.CashRegister{
		ID:               uuid.New(),
		RestaurantID:     restaurantID,
		DeliveryPersonID: deliveryPersonID,
		InitialAmount:    input.InitialAmount.Round(2),
		OpenedAt:         now,
		IsOpen:           true,
		TotalSales:       decimal.Zero,
		TotalCash:        decimal.Zero,
		TotalPOS:         decimal.Zero,
		TotalTransfer:    decimal.Zero,
		ExpectedCash:     input.InitialAmount.Round(2),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		registerRepo := txRepoFactory.NewCashRegisterRepository()

		_, err := registerRepo.FindOpen(ctx, restaurantID, deliveryPersonID)
		switch {
		case err == nil:
			return domainerrors.ErrCashRegisterAlreadyOpen
		case !errors.Is(err, repository.ErrCashRegisterNotFound):
			return errors.Wrap(err, "failed to check open cash register")
		}

		if err := registerRepo.Create(ctx, register); err != nil {
			if errors.Is(err, repository.ErrCashRegisterAlreadyOpen) {
				return domainerrors.ErrCashRegisterAlreadyOpen
			}

			return errors.Wrap(err, "failed to open cash register")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Cash register opened",
		slog.String("registerID", register.ID.String()),
		slog.String("deliveryPersonID", deliveryPersonID.String()),
		slog.String("initialAmount", register.InitialAmount.String()),
	)

	return register, nil
}

// Close computes the session totals from the completed orders created since it
// opened. The counted cash is recorded but never enforced.
func (srv *cashRegisterService) Close(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *usecase.CloseCashRegisterInput) (*entity.CashRegister, error) {
	if input.ActualCash != nil && input.ActualCash.IsNegative() {
		return nil, domainerrors.NewValidationError("actual cash cannot be negative")
	}

	var closed *entity.CashRegister
	err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		registerRepo := txRepoFactory.NewCashRegisterRepository()
		orderRepo := txRepoFactory.NewOrderRepository()

		register, err := srv.findOpen(ctx, registerRepo, restaurantID, deliveryPersonID)
		if err != nil {
			return err
		}

		active, err := orderRepo.CountByStatusSince(ctx, restaurantID, deliveryPersonID, register.OpenedAt, entity.ActiveOrderStatuses)
		if err != nil {
			return errors.Wrap(err, "failed to count active orders")
		}
		if active > 0 {
			return domainerrors.ErrCashRegisterActiveOrders.WithDetails(strconv.FormatInt(active, 10) + " active orders")
		}

		now := srv.clock.Now().UTC()
		orders, err := orderRepo.ListCompletedBetween(ctx, restaurantID, deliveryPersonID, register.OpenedAt, now)
		if err != nil {
			return errors.Wrap(err, "failed to list completed orders")
		}

		var actualCash *decimal.Decimal
		if input.ActualCash != nil {
			counted := input.ActualCash.Round(2)
			actualCash = &counted
		}
		register.Close(entity.SummarizeOrders(orders), actualCash, strings.TrimSpace(input.Notes), now)

		if err := registerRepo.Update(ctx, register); err != nil {
			return errors.Wrap(err, "failed to close cash register")
		}

		closed = register

		return nil
	})
	if err != nil {
		return nil, err
	}

	attrs := []any{
		slog.String("registerID", closed.ID.String()),
		slog.String("deliveryPersonID", deliveryPersonID.String()),
		slog.Int("orderCount", closed.OrderCount),
		slog.String("expectedCash", closed.ExpectedCash.String()),
	}
	if closed.Difference != nil {
		attrs = append(attrs, slog.String("difference", closed.Difference.String()))
	}
	srv.log(ctx).Info("Cash register closed", attrs...)

	return closed, nil
}

// Current reports the open session with totals computed up to now.
func (srv *cashRegisterService) Current(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID) (*usecase.CashRegisterStatus, error) {
	register, err := srv.findOpen(ctx, srv.cashRegisterRepo, restaurantID, deliveryPersonID)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now().UTC()
	orders, err := srv.orderRepo.ListCompletedBetween(ctx, restaurantID, deliveryPersonID, register.OpenedAt, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list completed orders")
	}

	active, err := srv.orderRepo.CountByStatusSince(ctx, restaurantID, deliveryPersonID, register.OpenedAt, entity.ActiveOrderStatuses)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count active orders")
	}

	totals := entity.SummarizeOrders(orders)

	return &usecase.CashRegisterStatus{
		Register:     register,
		Totals:       totals,
		ExpectedCash: register.ExpectedCashFor(totals),
		ActiveOrders: active,
	}, nil
}

func (srv *cashRegisterService) History(ctx context.Context, restaurantID uuid.UUID, input *usecase.CashRegisterHistoryInput) (*usecase.CashRegisterPage, error) {
	var historyInput usecase.CashRegisterHistoryInput
	if input != nil {
		historyInput = *input
	}
	page, pageSize := normalizePage(historyInput.Page, historyInput.PageSize)

	registers, total, err := srv.cashRegisterRepo.List(ctx, repository.CashRegisterFilter{
		RestaurantID:     restaurantID,
		DeliveryPersonID: historyInput.DeliveryPersonID,
		OnlyClosed:       true,
		Limit:            pageSize,
		Offset:           (page - 1) * pageSize,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list cash registers")
	}

	return &usecase.CashRegisterPage{Registers: registers, Total: total, Page: page, PageSize: pageSize}, nil
}

func (srv *cashRegisterService) findOpen(ctx context.Context, repo repository.CashRegisterRepository, restaurantID, deliveryPersonID uuid.UUID) (*entity.CashRegister, error) {
	register, err := repo.FindOpen(ctx, restaurantID, deliveryPersonID)
	if errors.Is(err, repository.ErrCashRegisterNotFound) {
		return nil, domainerrors.ErrCashRegisterNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find open cash register")
	}

	return register, nil
}
