package usecase

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OpenCashRegisterInput starts a session with the cash float on hand.
type OpenCashRegisterInput struct {
	InitialAmount decimal.Decimal
}

// CloseCashRegisterInput ends a session. ActualCash is the counted cash, kept
// for display next to the expected amount.
type CloseCashRegisterInput struct {
	ActualCash *decimal.Decimal
	Notes      string
}

// CashRegisterStatus is the open session with totals computed up to now.
type CashRegisterStatus struct {
	Register     *entity.CashRegister
	Totals       entity.CashRegisterTotals
	ExpectedCash decimal.Decimal
	ActiveOrders int64
}

// CashRegisterHistoryInput filters session listings. A nil DeliveryPersonID
// lists the whole restaurant.
type CashRegisterHistoryInput struct {
	DeliveryPersonID *uuid.UUID
	Page             int
	PageSize         int
}

// CashRegisterPage is one page of closed sessions.
type CashRegisterPage struct {
	Registers []*entity.CashRegister
	Total     int64
	Page      int
	PageSize  int
}

// CashRegisterUsecase runs delivery cash sessions.
type CashRegisterUsecase interface {
	Open(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *OpenCashRegisterInput) (*entity.CashRegister, error)
	Close(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID, input *CloseCashRegisterInput) (*entity.CashRegister, error)
	Current(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID) (*CashRegisterStatus, error)
	History(ctx context.Context, restaurantID uuid.UUID, input *CashRegisterHistoryInput) (*CashRegisterPage, error)
}
