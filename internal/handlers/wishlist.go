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

// WishlistHandler coordinates wishlist handlers.
type WishlistHandler struct {
	wishlistService *services.WishlistService
}

// NewWishlistHandler creates a new WishlistHandler.
func NewWishlistHandler(wishlistService *services.WishlistService) *WishlistHandler {
	return &WishlistHandler{
		wishlistService: wishlistService,
	}
}

// AddToWishlist adds an item to the authenticated user's wishlist.
func (h *WishlistHandler) AddToWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type AddWishlistRequest struct {
		ItemID uint64 `json:"item_id" binding:"required"`
	}

	var req AddWishlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	entry, err := h.wishlistService.Add(userID, req.ItemID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToWishlistEntryDTO(*entry))
}

// GetWishlist returns the authenticated user's wishlist.
func (h *WishlistHandler) GetWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	entries, err := h.wishlistService.List(userID)
	if err != nil {
		respondWishlistError(c, err)
		return
	}

	result := make([]dto.WishlistEntryDTO, 0, len(entries))
	for _, entry := range entries {
		result = append(result, dto.ToWishlistEntryDTO(entry))
	}

	c.JSON(http.StatusOK, result)
}

// RemoveFromWishlist removes an item from the authenticated user's
// wishlist.
func (h *WishlistHandler) RemoveFromWishlist(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	itemID, err := strconv.ParseUint(c.Param("item_id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.wishlistService.Remove(userID, itemID); err != nil {
		respondWishlistError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondWishlistError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound),
		errors.Is(err, services.ErrNotWishlisted):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrAlreadyWishlisted):
		apierrors.Conflict(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
