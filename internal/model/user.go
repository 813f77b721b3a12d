package model

import (
	"time"

	"gorm.io/gorm"
)

// Role values stored in users.role.
const (
	RoleAdmin   = "admin"
	RoleCashier = "cashier"
)

// User stores an operator of the register. Authentication matches PINHash,
// which the caller computes before it reaches the store.
type User struct {
	ID        int64  `gorm:"primaryKey"`
	UUID      string `gorm:"column:uuid;uniqueIndex;not null"`
	Name      string `gorm:"not null"`
	Email     *string
	PINHash   string `gorm:"column:pin_hash;not null"`
	Role      string `gorm:"not null"`
	IsActive  bool   `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
