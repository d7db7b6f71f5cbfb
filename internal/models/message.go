package models

import (
	"time"
)

// Message is an append-only direct message between two users,
// optionally tied to an item the conversation is about.
type Message struct {
	ID         uint64    `gorm:"primarykey;column:message_id" json:"message_id"`
	SenderID   uint64    `gorm:"not null;index" json:"sender_id"`
	ReceiverID uint64    `gorm:"not null;index" json:"receiver_id"`
	Content    string    `gorm:"type:text;not null" json:"content"`
	SentAt     time.Time `gorm:"autoCreateTime;index" json:"sent_at"`
	IsRead     bool      `gorm:"not null;default:false" json:"is_read"`
	ItemID     *uint64   `gorm:"index" json:"item_id"`
}
