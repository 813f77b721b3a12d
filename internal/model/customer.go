package model

import (
	"time"

	"gorm.io/gorm"
)

// Customer keeps contact data plus separate billing and shipping addresses.
type Customer struct {
	ID                   int64  `gorm:"primaryKey"`
	UUID                 string `gorm:"column:uuid;uniqueIndex;not null"`
	FirstName            string `gorm:"not null"`
	LastName             string `gorm:"not null"`
	Email                *string
	Phone                *string
	BillingAddressLine1  *string `gorm:"column:billing_address_line1"`
	BillingAddressLine2  *string `gorm:"column:billing_address_line2"`
	BillingCity          *string
	BillingState         *string
	BillingZip           *string
	ShippingAddressLine1 *string `gorm:"column:shipping_address_line1"`
	ShippingAddressLine2 *string `gorm:"column:shipping_address_line2"`
	ShippingCity         *string
	ShippingState        *string
	ShippingZip          *string
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
	DeletedAt            gorm.DeletedAt `gorm:"index"`
}
