package model

import (
	"time"

	"gorm.io/gorm"
)

// Order status values.
const (
	OrderDraft     = "draft"
	OrderCompleted = "completed"
	OrderRefunded  = "refunded"
	OrderVoid      = "void"
)

// Order is a sale header. TotalCents is expected to equal
// SubtotalCents - DiscountCents + TaxTotalCents; the store does not check it.
type Order struct {
	ID            int64  `gorm:"primaryKey"`
	UUID          string `gorm:"column:uuid;uniqueIndex;not null"`
	OrderNumber   string `gorm:"uniqueIndex;not null"`
	Status        string `gorm:"not null;default:'draft'"`
	CustomerID    *int64
	UserID        int64 `gorm:"not null"`
	SubtotalCents int64 `gorm:"not null;default:0"`
	DiscountCents int64 `gorm:"not null;default:0"`
	TaxTotalCents int64 `gorm:"not null;default:0"`
	TotalCents    int64 `gorm:"not null;default:0"`
	Notes         *string
	CompletedAt   *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
	DeletedAt     gorm.DeletedAt `gorm:"index"`
}

// OrderItem snapshots the product name and SKU at sale time so later product
// edits or deletion do not rewrite history. ProductID becomes nil when the
// product row is physically removed.
type OrderItem struct {
	ID                int64  `gorm:"primaryKey"`
	UUID              string `gorm:"column:uuid;uniqueIndex;not null"`
	OrderID           int64  `gorm:"index;not null"`
	ProductID         *int64
	ProductName       string  `gorm:"not null"`
	ProductSKU        *string `gorm:"column:product_sku"`
	Quantity          int     `gorm:"not null"`
	UnitPriceCents    int64   `gorm:"not null"`
	TaxRateBps        int     `gorm:"not null"`
	LineSubtotalCents int64   `gorm:"not null"`
	LineTaxCents      int64   `gorm:"not null"`
	LineTotalCents    int64   `gorm:"not null"`
	Notes             *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
