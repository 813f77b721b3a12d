package model

import (
	"time"

	"gorm.io/gorm"
)

// Product is a sellable item. Prices are integer cents and the tax rate is in
// basis points (825 = 8.25%). Stock may go negative; nothing here prevents it.
type Product struct {
	ID                int64  `gorm:"primaryKey"`
	UUID              string `gorm:"column:uuid;uniqueIndex;not null"`
	Name              string `gorm:"index;not null"`
	Description       *string
	SKU               *string `gorm:"column:sku"`
	Barcode           *string
	CategoryID        *int64
	CostPriceCents    int64 `gorm:"not null;default:0"`
	SalePriceCents    int64 `gorm:"not null;default:0"`
	TaxRateBps        int   `gorm:"not null;default:0"`
	StockQuantity     int   `gorm:"not null;default:0"`
	LowStockThreshold int   `gorm:"not null;default:0"`
	ImagePath         *string
	IsActive          bool `gorm:"not null"`
	SortOrder         int  `gorm:"not null;default:0"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
	DeletedAt         gorm.DeletedAt `gorm:"index"`
}
