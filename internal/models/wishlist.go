package models

import (
	"time"
)

// WishlistEntry links a user to an item they want. At most one entry
// exists per (user, item) pair, enforced by the composite unique index.
type WishlistEntry struct {
	ID        uint64    `gorm:"primarykey;column:wishlist_id" json:"wishlist_id"`
	UserID    uint64    `gorm:"not null;uniqueIndex:idx_wishlist_user_item" json:"user_id"`
	ItemID    uint64    `gorm:"not null;uniqueIndex:idx_wishlist_user_item" json:"item_id"`
	AddedDate time.Time `gorm:"autoCreateTime" json:"added_date"`

	// Relations
	Item Item `gorm:"foreignKey:ItemID" json:"-"`
}

func (WishlistEntry) TableName() string { return "wishlist" }
