package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harukik/secondhand-market-api/internal/dto"
	apierrors "github.com/harukik/secondhand-market-api/internal/errors"
	"github.com/harukik/secondhand-market-api/internal/middleware"
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/services"
)

// TransactionHandler coordinates transaction lifecycle handlers.
type TransactionHandler struct {
	transactionService *services.TransactionService
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(transactionService *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{
		transactionService: transactionService,
	}
}

// CreateTransaction opens a pending transaction on an item, with the
// authenticated user as buyer.
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateTransactionRequest struct {
		ItemID uint64 `json:"item_id" binding:"required"`
	}

	var req CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.transactionService.Create(req.ItemID, userID)
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionDTO(*transaction))
}

// ListTransactions returns the transactions the authenticated user
// participates in.
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	transactions, err := h.transactionService.ListForUser(userID)
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	result := make([]dto.TransactionDTO, 0, len(transactions))
	for _, transaction := range transactions {
		result = append(result, dto.ToTransactionDTO(transaction))
	}

	c.JSON(http.StatusOK, result)
}

// UpdateTransactionStatus transitions a transaction to completed or
// cancelled.
func (h *TransactionHandler) UpdateTransactionStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid transaction ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateStatusRequest struct {
		Status models.TransactionStatus `json:"status" binding:"required"`
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	transaction, err := h.transactionService.UpdateStatus(id, req.Status, userID)
	if err != nil {
		respondTransactionError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransactionDTO(*transaction))
}

func respondTransactionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrTransactionNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrItemUnavailable):
		apierrors.ItemUnavailable(c)
	case errors.Is(err, services.ErrSelfTransaction):
		apierrors.SelfTransaction(c)
	case errors.Is(err, services.ErrNotParticipant):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrInvalidTransition):
		apierrors.InvalidTransition(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatus):
		apierrors.BadRequest(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
