package model

import (
	"time"

	"gorm.io/gorm"
)

// DefaultCategoryColor is the swatch assigned when a category is created without one.
const DefaultCategoryColor = "#6366f1"

// Category groups products on the register screen.
type Category struct {
	ID          int64  `gorm:"primaryKey"`
	UUID        string `gorm:"column:uuid;uniqueIndex;not null"`
	Name        string `gorm:"not null"`
	Description *string
	Color       string `gorm:"not null"`
	Icon        *string
	SortOrder   int `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
