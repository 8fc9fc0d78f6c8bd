package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeliveryDeviceModel mirrors the 'delivery_devices' table: a delivery app
// installation registered for push notifications.
type DeliveryDeviceModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	DeliveryPersonID uuid.UUID `gorm:"type:uuid;not null;index"`
	RestaurantID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FCMToken         string    `gorm:"column:fcm_token;type:varchar(255);not null;index"`
	DeviceID         string    `gorm:"type:varchar(255);not null"`
	Platform         string    `gorm:"type:varchar(50);not null"`
	IsActive         bool      `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
	DeletedAt        gorm.DeletedAt `gorm:"index"`

	DeliveryPerson *DeliveryPersonModel `gorm:"foreignKey:DeliveryPersonID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryDeviceModel) TableName() string {
	return "delivery_devices"
}

// All lists every model in dependency order, for migrations and code generation.
func All() []any {
	return []any{
		&RestaurantModel{},
		&StaffModel{},
		&CustomerModel{},
		&DeliveryPersonModel{},
		&CategoryModel{},
		&ProductModel{},
		&OrderModel{},
		&OrderItemModel{},
		&OrderStatusHistoryModel{},
		&CashRegisterModel{},
		&DeliveryDeviceModel{},
	}
}
