package models

import (
	"time"
)

type TransactionStatus string

const (
	TransactionStatusPending   TransactionStatus = "pending"
	TransactionStatusCompleted TransactionStatus = "completed"
	TransactionStatusCancelled TransactionStatus = "cancelled"
)

// Terminal reports whether no further status transition is permitted.
func (s TransactionStatus) Terminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusCancelled
}

type Transaction struct {
	ID              uint64            `gorm:"primarykey;column:transaction_id" json:"transaction_id"`
	ItemID          uint64            `gorm:"not null;index" json:"item_id"`
	BuyerID         uint64            `gorm:"not null;index" json:"buyer_id"`
	SellerID        uint64            `gorm:"not null;index" json:"seller_id"`
	TransactionDate time.Time         `gorm:"autoCreateTime;index" json:"transaction_date"`
	Status          TransactionStatus `gorm:"type:varchar(50);not null;default:'pending'" json:"status"`
	CompletionDate  *time.Time        `json:"completion_date"`

	// Relations
	Item   Item `gorm:"foreignKey:ItemID" json:"-"`
	Buyer  User `gorm:"foreignKey:BuyerID" json:"-"`
	Seller User `gorm:"foreignKey:SellerID" json:"-"`
}
