package dto

import (
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
)

// ItemDTO represents an item in API responses
type ItemDTO struct {
	ItemID       uint64    `json:"item_id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Condition    string    `json:"condition"`
	OwnerID      uint64    `json:"owner_id"`
	PostDate     time.Time `json:"post_date"`
	Price        *int64    `json:"price"`
	ExchangeType bool      `json:"exchange_type"`
	Status       bool      `json:"status"`
	DesiredItem  *string   `json:"desired_item"`
	Category     uint64    `json:"category"`
	TotalImages  int       `json:"total_images"`
	Images       []string  `json:"images"`
}

// ToItemDTO converts an item model to its API representation. Image
// names become retrievable paths under /images/.
func ToItemDTO(item models.Item) ItemDTO {
	images := make([]string, 0, len(item.Images))
	for _, image := range item.Images {
		images = append(images, "/images/"+image.ImageDataName)
	}

	return ItemDTO{
		ItemID:       item.ID,
		Title:        item.Title,
		Description:  item.Description,
		Condition:    item.Condition,
		OwnerID:      item.OwnerID,
		PostDate:     item.PostDate,
		Price:        item.Price,
		ExchangeType: item.ExchangeType,
		Status:       item.Status,
		DesiredItem:  item.DesiredItem,
		Category:     item.CategoryID,
		TotalImages:  item.TotalImages,
		Images:       images,
	}
}
