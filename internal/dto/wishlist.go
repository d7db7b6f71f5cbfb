package dto

import (
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
)

// WishlistEntryDTO represents a wishlist entry in API responses
type WishlistEntryDTO struct {
	WishlistID uint64    `json:"wishlist_id"`
	UserID     uint64    `json:"user_id"`
	ItemID     uint64    `json:"item_id"`
	AddedDate  time.Time `json:"added_date"`
	Item       *ItemDTO  `json:"item,omitempty"`
}

// ToWishlistEntryDTO converts a wishlist entry to its API representation
func ToWishlistEntryDTO(entry models.WishlistEntry) WishlistEntryDTO {
	result := WishlistEntryDTO{
		WishlistID: entry.ID,
		UserID:     entry.UserID,
		ItemID:     entry.ItemID,
		AddedDate:  entry.AddedDate,
	}

	if entry.Item.ID != 0 {
		item := ToItemDTO(entry.Item)
		result.Item = &item
	}

	return result
}
