package dto

import (
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
)

// MessageDTO represents a message in API responses
type MessageDTO struct {
	MessageID  uint64    `json:"message_id"`
	SenderID   uint64    `json:"sender_id"`
	ReceiverID uint64    `json:"receiver_id"`
	Content    string    `json:"content"`
	SentAt     time.Time `json:"sent_at"`
	IsRead     bool      `json:"is_read"`
	ItemID     *uint64   `json:"item_id"`
}

// ToMessageDTO converts a message model to its API representation
func ToMessageDTO(message models.Message) MessageDTO {
	return MessageDTO{
		MessageID:  message.ID,
		SenderID:   message.SenderID,
		ReceiverID: message.ReceiverID,
		Content:    message.Content,
		SentAt:     message.SentAt,
		IsRead:     message.IsRead,
		ItemID:     message.ItemID,
	}
}
