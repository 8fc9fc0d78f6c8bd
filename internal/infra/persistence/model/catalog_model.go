package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CategoryModel mirrors the 'categories' table.
type CategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name         string    `gorm:"type:varchar(100);not null"`
	Description  string    `gorm:"type:text"`
	SortOrder    int       `gorm:"not null;default:0"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (CategoryModel) TableName() string {
	return "categories"
}

// ProductModel mirrors the 'products' table.
type ProductModel struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_restaurant_category"`
	CategoryID   uuid.UUID       `gorm:"type:uuid;not null;index:idx_products_restaurant_category"`
	Name         string          `gorm:"type:varchar(200);not null"`
	Description  string          `gorm:"type:text"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	ImageURL     string          `gorm:"type:varchar(500)"`
	IsAvailable  bool            `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Restaurant *RestaurantModel `gorm:"foreignKey:RestaurantID;constraint:OnDelete:CASCADE"`
	Category   *CategoryModel   `gorm:"foreignKey:CategoryID;constraint:OnDelete:RESTRICT"`
}

// TableName explicitly sets the table name for GORM.
func (ProductModel) TableName() string {
	return "products"
}
