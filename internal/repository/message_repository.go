package repository

import (
	"github.com/harukik/secondhand-market-api/internal/models"
	"gorm.io/gorm"
)

// GormMessageRepository is a GORM implementation of MessageRepository
type GormMessageRepository struct {
	db *gorm.DB
}

// NewMessageRepository creates a new MessageRepository
func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &GormMessageRepository{db: db}
}

// Create appends a message
func (r *GormMessageRepository) Create(message *models.Message) error {
	return r.db.Create(message).Error
}

// ListConversation lists messages between two users, oldest first
func (r *GormMessageRepository) ListConversation(userID, peerID uint64) ([]models.Message, error) {
	var messages []models.Message
	err := r.db.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)",
			userID, peerID, peerID, userID).
		Order("sent_at ASC").
		Find(&messages).Error
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// MarkRead marks every message from peer to user as read
func (r *GormMessageRepository) MarkRead(userID, peerID uint64) error {
	return r.db.Model(&models.Message{}).
		Where("sender_id = ? AND receiver_id = ? AND is_read = ?", peerID, userID, false).
		Update("is_read", true).Error
}
