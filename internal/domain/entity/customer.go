package entity

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a person who places orders.
// A nil RestaurantID marks a shared customer usable across every tenant.
type Customer struct {
	ID           uuid.UUID
	RestaurantID *uuid.UUID
	Email        string
	Name         string
	Phone        string
	Address      string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsShared reports whether the customer is not bound to a single restaurant.
func (c *Customer) IsShared() bool {
	return c.RestaurantID == nil
}
