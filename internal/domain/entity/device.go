package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryDevice is a delivery app installation registered for push notifications.
type DeliveryDevice struct {
	ID               uuid.UUID `json:"id"`
	DeliveryPersonID uuid.UUID `json:"delivery_person_id"`
	RestaurantID     uuid.UUID `json:"restaurant_id"`
	FCMToken         string    `json:"fcm_token"`
	DeviceID         string    `json:"device_id"` // Unique device identifier from the client.
	Platform         string    `json:"platform"`  // ios or android.
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}
