package model

import "time"

// Refund records money returned against an order by a user.
type Refund struct {
	ID               int64  `gorm:"primaryKey"`
	UUID             string `gorm:"column:uuid;uniqueIndex;not null"`
	OrderID          int64  `gorm:"index;not null"`
	UserID           int64  `gorm:"not null"`
	TotalRefundCents int64  `gorm:"not null"`
	Reason           *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// RefundItem ties a refund to an original order line. Restock tells the caller
// to put Quantity back on the shelf.
type RefundItem struct {
	ID                int64  `gorm:"primaryKey"`
	UUID              string `gorm:"column:uuid;uniqueIndex;not null"`
	RefundID          int64  `gorm:"index;not null"`
	OrderItemID       int64  `gorm:"not null"`
	Quantity          int    `gorm:"not null"`
	RefundAmountCents int64  `gorm:"not null"`
	Restock           bool   `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
