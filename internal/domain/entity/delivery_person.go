package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryPerson belongs to one restaurant and authenticates independently of staff.
type DeliveryPerson struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Username     string
	Name         string
	Phone        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
