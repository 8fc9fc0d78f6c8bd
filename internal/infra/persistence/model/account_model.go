package model

import (
	"time"

	"github.com/google/uuid"
)

// StaffModel mirrors the 'staff' table. Usernames are unique per restaurant.
type StaffModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_staff_restaurant_username"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_staff_restaurant_username"`
	Email        string    `gorm:"type:varchar(255)"`
	Name         string    `gorm:"type:varchar(200);not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(20);not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (StaffModel) TableName() string {
	return "staff"
}

// CustomerModel mirrors the 'customers' table. A NULL restaurant_id marks a
// shared customer; email uniqueness is enforced per scope by two indexes
// created in the migration (see persistence/postgres.Migrate).
type CustomerModel struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	RestaurantID *uuid.UUID `gorm:"type:uuid;index:idx_customers_restaurant_email"`
	Email        string     `gorm:"type:varchar(255);not null;index:idx_customers_restaurant_email"`
	Name         string     `gorm:"type:varchar(200);not null"`
	Phone        string     `gorm:"type:varchar(50)"`
	Address      string     `gorm:"type:text"`
	PasswordHash string     `gorm:"type:varchar(255);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CustomerModel) TableName() string {
	return "customers"
}

// DeliveryPersonModel mirrors the 'delivery_persons' table.
type DeliveryPersonModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_delivery_restaurant_username"`
	Username     string    `gorm:"type:varchar(100);not null;uniqueIndex:idx_delivery_restaurant_username"`
	Name         string    `gorm:"type:varchar(200);not null"`
	Phone        string    `gorm:"type:varchar(50)"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	IsActive     bool      `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryPersonModel) TableName() string {
	return "delivery_persons"
}
