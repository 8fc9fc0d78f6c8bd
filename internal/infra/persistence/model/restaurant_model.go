// Package model holds the GORM table mappings. Types are exported so the
// GORM Gen tool can build query code from them.
package model

import (
	"time"

	"github.com/google/uuid"
)

// RestaurantModel mirrors the 'restaurants' table.
type RestaurantModel struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Identifier    string    `gorm:"type:varchar(100);not null;uniqueIndex"`
	Name          string    `gorm:"type:varchar(200);not null"`
	IsActive      bool      `gorm:"not null;index"`
	POSEnabled    bool      `gorm:"column:pos_enabled;not null"`
	POSProvider   string    `gorm:"column:pos_provider;type:varchar(50)"`
	POSTerminalID string    `gorm:"column:pos_terminal_id;type:varchar(100)"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (RestaurantModel) TableName() string {
	return "restaurants"
}
