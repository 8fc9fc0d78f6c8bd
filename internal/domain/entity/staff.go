package entity

import (
	"time"

	"github.com/google/uuid"
)

// Staff is a restaurant administrator or employee. Username is unique per restaurant.
type Staff struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Username     string
	Email        string
	Name         string
	PasswordHash string
	Role         Role // RoleAdmin or RoleEmployee
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
