package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primarykey;column:user_id" json:"user_id"`
	Username     string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string    `gorm:"type:varchar(100);uniqueIndex;not null" json:"email"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	Address      *string   `gorm:"type:varchar(255)" json:"address"`
	// No column default: GORM omits zero-value fields when a default is
	// tagged, which would silently store false as true on insert.
	IsActive     bool      `gorm:"not null" json:"is_active"`
	JoinDate     time.Time `gorm:"autoCreateTime" json:"join_date"`

	// Relations
	Phones []Phone `gorm:"foreignKey:UserID" json:"phones,omitempty"`
	Items  []Item  `gorm:"foreignKey:OwnerID" json:"-"`
}

type Phone struct {
	ID          uint64 `gorm:"primarykey;column:phone_id" json:"phone_id"`
	UserID      uint64 `gorm:"not null;index" json:"user_id"`
	PhoneNumber string `gorm:"type:varchar(20);not null" json:"phone_number"`
}
