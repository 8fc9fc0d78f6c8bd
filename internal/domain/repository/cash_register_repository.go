package repository

import (
	"context"

	"comanda/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrCashRegisterNotFound is returned when no matching session exists.
	ErrCashRegisterNotFound = errors.New("cash register not found")
	// ErrCashRegisterAlreadyOpen is returned when the one-open-session index rejects an insert.
	ErrCashRegisterAlreadyOpen = errors.New("cash register already open")
)

// CashRegisterFilter narrows session listings.
type CashRegisterFilter struct {
	RestaurantID     uuid.UUID
	DeliveryPersonID *uuid.UUID
	OnlyClosed       bool
	Limit            int
	Offset           int
}

// CashRegisterRepository persists delivery cash sessions.
type CashRegisterRepository interface {
	Create(ctx context.Context, register *entity.CashRegister) error
	// FindOpen returns the person's open session; ErrCashRegisterNotFound if there is none.
	// Inside a transaction the row is locked for update.
	FindOpen(ctx context.Context, restaurantID, deliveryPersonID uuid.UUID) (*entity.CashRegister, error)
	FindByID(ctx context.Context, restaurantID, id uuid.UUID) (*entity.CashRegister, error)
	Update(ctx context.Context, register *entity.CashRegister) error
	// List returns matching sessions ordered by OpenedAt descending, and the total count.
	List(ctx context.Context, filter CashRegisterFilter) ([]*entity.CashRegister, int64, error)
}
