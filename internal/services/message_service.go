package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrReceiverNotFound = errors.New("receiver not found")
	ErrEmptyMessage     = errors.New("message content is required")
	ErrSelfMessage      = errors.New("cannot message yourself")
)

// MessageService handles direct messaging between users.
type MessageService struct {
	messageRepo repository.MessageRepository
	userRepo    repository.UserRepository
	itemRepo    repository.ItemRepository
}

// NewMessageService creates a new MessageService.
func NewMessageService(messageRepo repository.MessageRepository, userRepo repository.UserRepository, itemRepo repository.ItemRepository) *MessageService {
	return &MessageService{
		messageRepo: messageRepo,
		userRepo:    userRepo,
		itemRepo:    itemRepo,
	}
}

// SendInput represents a message to deliver.
type SendInput struct {
	SenderID   uint64
	ReceiverID uint64
	Content    string
	ItemID     *uint64
}

// Send appends a message. The receiver and the optional item context
// must exist.
func (s *MessageService) Send(input SendInput) (*models.Message, error) {
	if strings.TrimSpace(input.Content) == "" {
		return nil, ErrEmptyMessage
	}
	if input.SenderID == input.ReceiverID {
		return nil, ErrSelfMessage
	}

	if _, err := s.userRepo.FindByID(input.ReceiverID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReceiverNotFound
		}
		return nil, fmt.Errorf("failed to find receiver: %w", err)
	}

	if input.ItemID != nil {
		if _, err := s.itemRepo.FindByID(*input.ItemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, ErrItemNotFound
			}
			return nil, fmt.Errorf("failed to find item: %w", err)
		}
	}

	message := &models.Message{
		SenderID:   input.SenderID,
		ReceiverID: input.ReceiverID,
		Content:    input.Content,
		ItemID:     input.ItemID,
	}

	if err := s.messageRepo.Create(message); err != nil {
		return nil, fmt.Errorf("failed to send message: %w", err)
	}

	return message, nil
}

// Conversation returns the messages between the user and a peer,
// oldest first, and marks the peer's messages to the user as read.
func (s *MessageService) Conversation(userID, peerID uint64) ([]models.Message, error) {
	messages, err := s.messageRepo.ListConversation(userID, peerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list conversation: %w", err)
	}

	if err := s.messageRepo.MarkRead(userID, peerID); err != nil {
		return nil, fmt.Errorf("failed to mark messages read: %w", err)
	}

	for i := range messages {
		if messages[i].ReceiverID == userID {
			messages[i].IsRead = true
		}
	}

	return messages, nil
}
