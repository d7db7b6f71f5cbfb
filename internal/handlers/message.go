package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harukik/secondhand-market-api/internal/dto"
	apierrors "github.com/harukik/secondhand-market-api/internal/errors"
	"github.com/harukik/secondhand-market-api/internal/middleware"
	"github.com/harukik/secondhand-market-api/internal/services"
)

// MessageHandler coordinates direct-messaging handlers.
type MessageHandler struct {
	messageService *services.MessageService
}

// NewMessageHandler creates a new MessageHandler.
func NewMessageHandler(messageService *services.MessageService) *MessageHandler {
	return &MessageHandler{
		messageService: messageService,
	}
}

// SendMessage delivers a message from the authenticated user.
func (h *MessageHandler) SendMessage(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type SendMessageRequest struct {
		ReceiverID uint64  `json:"receiver_id" binding:"required"`
		Content    string  `json:"content" binding:"required"`
		ItemID     *uint64 `json:"item_id"`
	}

	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	message, err := h.messageService.Send(services.SendInput{
		SenderID:   userID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		ItemID:     req.ItemID,
	})
	if err != nil {
		respondMessageError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMessageDTO(*message))
}

// GetConversation returns the messages between the authenticated user
// and a peer, marking received ones as read.
func (h *MessageHandler) GetConversation(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	peerID, err := strconv.ParseUint(c.Param("peer_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid user ID")
		return
	}

	messages, err := h.messageService.Conversation(userID, peerID)
	if err != nil {
		respondMessageError(c, err)
		return
	}

	result := make([]dto.MessageDTO, 0, len(messages))
	for _, message := range messages {
		result = append(result, dto.ToMessageDTO(message))
	}

	c.JSON(http.StatusOK, result)
}

func respondMessageError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrReceiverNotFound),
		errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrEmptyMessage),
		errors.Is(err, services.ErrSelfMessage):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
