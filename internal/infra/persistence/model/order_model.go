package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderModel mirrors the 'orders' table.
type OrderModel struct {
	ID               uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID       `gorm:"type:uuid;not null;index:idx_orders_restaurant_created"`
	CustomerID       *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerName     string          `gorm:"type:varchar(200);not null"`
	CustomerPhone    string          `gorm:"type:varchar(50)"`
	CustomerEmail    string          `gorm:"type:varchar(255)"`
	DeliveryAddress  string          `gorm:"type:text"`
	TableNumber      string          `gorm:"type:varchar(20)"`
	OrderType        string          `gorm:"type:varchar(20);not null"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	DeliveryPersonID *uuid.UUID      `gorm:"type:uuid;index:idx_orders_delivery_created"`
	Total            decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	PaymentMethod    string          `gorm:"type:varchar(50);not null"`
	Notes            string          `gorm:"type:text"`
	IsArchived       bool            `gorm:"not null;index"`
	CreatedAt        time.Time       `gorm:"index:idx_orders_restaurant_created;index:idx_orders_delivery_created"`
	UpdatedAt        time.Time

	Items []OrderItemModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderModel) TableName() string {
	return "orders"
}

// OrderItemModel mirrors the 'order_items' table.
type OrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID   uuid.UUID       `gorm:"type:uuid;not null"`
	ProductName string          `gorm:"type:varchar(200);not null"`
	UnitPrice   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity    int             `gorm:"not null"`
	Subtotal    decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

// TableName explicitly sets the table name for GORM.
func (OrderItemModel) TableName() string {
	return "order_items"
}

// OrderStatusHistoryModel mirrors the append-only 'order_status_history' table.
type OrderStatusHistoryModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus string    `gorm:"type:varchar(20)"`
	ToStatus   string    `gorm:"type:varchar(20);not null"`
	ChangedBy  string    `gorm:"type:varchar(255);not null"`
	Note       string    `gorm:"type:text"`
	ChangedAt  time.Time `gorm:"not null"`

	Order *OrderModel `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (OrderStatusHistoryModel) TableName() string {
	return "order_status_history"
}
