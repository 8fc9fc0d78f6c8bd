package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashRegisterModel mirrors the 'delivery_cash_registers' table. The partial
// unique index allows at most one open session per delivery person.
type CashRegisterModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;primaryKey"`
	RestaurantID     uuid.UUID        `gorm:"type:uuid;not null;index"`
	DeliveryPersonID uuid.UUID        `gorm:"type:uuid;not null;index;uniqueIndex:idx_cash_registers_one_open,where:is_open = true"`
	InitialAmount    decimal.Decimal  `gorm:"type:numeric(12,2);not null"`
	OpenedAt         time.Time        `gorm:"not null"`
	ClosedAt         *time.Time       `gorm:"index"`
	IsOpen           bool             `gorm:"not null"`
	TotalSales       decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	TotalCash        decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	TotalPOS         decimal.Decimal  `gorm:"column:total_pos;type:numeric(12,2);not null;default:0"`
	TotalTransfer    decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	ExpectedCash     decimal.Decimal  `gorm:"type:numeric(12,2);not null;default:0"`
	ActualCash       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	Difference       *decimal.Decimal `gorm:"type:numeric(12,2)"`
	OrderCount       int              `gorm:"not null;default:0"`
	Notes            string           `gorm:"type:text"`
	CreatedAt        time.Time
	UpdatedAt        time.Time

	DeliveryPerson *DeliveryPersonModel `gorm:"foreignKey:DeliveryPersonID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CashRegisterModel) TableName() string {
	return "delivery_cash_registers"
}
