package models

import (
	"time"
)

type Item struct {
	ID          uint64    `gorm:"primarykey;column:item_id" json:"item_id"`
	Title       string    `gorm:"type:varchar(100);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Condition   string    `gorm:"type:varchar(50);not null" json:"condition"`
	OwnerID     uint64    `gorm:"not null;index" json:"owner_id"`
	PostDate    time.Time `gorm:"autoCreateTime;index" json:"post_date"`
	// Price is nullable: exchange listings carry no price.
	Price        *int64  `gorm:"index" json:"price"`
	ExchangeType bool    `gorm:"not null" json:"exchange_type"`
	Status       bool    `gorm:"not null" json:"status"`
	DesiredItem  *string `gorm:"type:varchar(100)" json:"desired_item"`
	CategoryID   uint64  `gorm:"column:category;not null;index" json:"category"`
	TotalImages  int     `gorm:"not null;default:0" json:"total_images"`

	// Relations
	Owner    User        `gorm:"foreignKey:OwnerID" json:"-"`
	Category Category    `gorm:"foreignKey:CategoryID" json:"-"`
	Images   []ItemImage `gorm:"foreignKey:ItemID;constraint:OnDelete:CASCADE" json:"-"`
}

type ItemImage struct {
	ID            uint64 `gorm:"primarykey;column:image_id" json:"image_id"`
	ItemID        uint64 `gorm:"not null;index" json:"item_id"`
	ImageDataName string `gorm:"type:varchar(255);not null" json:"image_data_name"`
}
