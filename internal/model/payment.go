package model

import "time"

// Payment methods accepted at the register.
const (
	PaymentCash       = "cash"
	PaymentCheck      = "check"
	PaymentCreditCard = "credit_card"
	PaymentOther      = "other"
)

// Payment is one tender applied to an order; split tender means several rows.
type Payment struct {
	ID              int64  `gorm:"primaryKey"`
	UUID            string `gorm:"column:uuid;uniqueIndex;not null"`
	OrderID         int64  `gorm:"index;not null"`
	Method          string `gorm:"not null"`
	AmountCents     int64  `gorm:"not null"`
	ChangeCents     int64  `gorm:"not null;default:0"`
	ReferenceNumber *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
