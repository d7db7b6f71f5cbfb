package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/harukik/secondhand-market-api/internal/dto"
	apierrors "github.com/harukik/secondhand-market-api/internal/errors"
	"github.com/harukik/secondhand-market-api/internal/middleware"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/harukik/secondhand-market-api/internal/services"
	"github.com/harukik/secondhand-market-api/internal/utils"
)

// ItemHandler coordinates item listing handlers.
type ItemHandler struct {
	itemService *services.ItemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(itemService *services.ItemService) *ItemHandler {
	return &ItemHandler{
		itemService: itemService,
	}
}

// CreateItem creates a listing from a multipart form. Image files go in
// the "images" field, up to three, JPEG or PNG.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type CreateItemForm struct {
		Title        string  `form:"title" binding:"required,max=100"`
		Description  string  `form:"description"`
		Condition    string  `form:"condition" binding:"required,max=50"`
		Price        *int64  `form:"price" binding:"omitempty,gte=0"`
		ExchangeType bool    `form:"exchange_type"`
		DesiredItem  *string `form:"desired_item"`
		Category     uint64  `form:"category" binding:"required"`
	}

	var form CreateItemForm
	if err := c.ShouldBind(&form); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	multipart, err := c.MultipartForm()
	if err != nil {
		apierrors.BadRequest(c, "Expected multipart form data")
		return
	}

	var images []services.ImageUpload
	for _, header := range multipart.File["images"] {
		file, err := header.Open()
		if err != nil {
			apierrors.BadRequest(c, "Unreadable image upload")
			return
		}
		data, err := io.ReadAll(file)
		file.Close()
		if err != nil {
			apierrors.BadRequest(c, "Unreadable image upload")
			return
		}
		images = append(images, services.ImageUpload{
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	item, err := h.itemService.Create(services.CreateItemInput{
		Title:        form.Title,
		Description:  form.Description,
		Condition:    form.Condition,
		Price:        form.Price,
		ExchangeType: form.ExchangeType,
		DesiredItem:  form.DesiredItem,
		CategoryID:   form.Category,
		OwnerID:      userID,
		Images:       images,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToItemDTO(*item))
}

// GetItem returns an item by ID.
func (h *ItemHandler) GetItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.itemService.Get(id)
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTO(*item))
}

// ListItems returns items with pagination and optional filters.
func (h *ItemHandler) ListItems(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	filter := repository.ItemFilter{Pagination: params}

	if ownerStr := c.Query("owner_id"); ownerStr != "" {
		ownerID, err := strconv.ParseUint(ownerStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid owner_id")
			return
		}
		filter.OwnerID = &ownerID
	}
	if categoryStr := c.Query("category"); categoryStr != "" {
		categoryID, err := strconv.ParseUint(categoryStr, 10, 64)
		if err != nil {
			apierrors.BadRequest(c, "Invalid category")
			return
		}
		filter.CategoryID = &categoryID
	}
	if availableStr := c.Query("available"); availableStr != "" {
		available, err := strconv.ParseBool(availableStr)
		if err != nil {
			apierrors.BadRequest(c, "Invalid available flag")
			return
		}
		filter.Available = &available
	}

	items, total, err := h.itemService.List(filter)
	if err != nil {
		respondItemError(c, err)
		return
	}

	result := make([]dto.ItemDTO, 0, len(items))
	for _, item := range items {
		result = append(result, dto.ToItemDTO(item))
	}

	c.JSON(http.StatusOK, gin.H{
		"items": result,
		"pagination": utils.PaginationResponse{
			Page:  params.Page,
			Limit: params.Limit,
			Total: total,
		},
	})
}

// UpdateItem applies owner edits to a listing.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	type UpdateItemRequest struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		Condition   *string `json:"condition"`
		Price       *int64  `json:"price" binding:"omitempty,gte=0"`
		DesiredItem *string `json:"desired_item"`
		Status      *bool   `json:"status"`
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	item, err := h.itemService.Update(id, userID, services.UpdateItemInput{
		Title:       req.Title,
		Description: req.Description,
		Condition:   req.Condition,
		Price:       req.Price,
		DesiredItem: req.DesiredItem,
		Status:      req.Status,
	})
	if err != nil {
		respondItemError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToItemDTO(*item))
}

// DeleteItem removes a listing and its images.
func (h *ItemHandler) DeleteItem(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		apierrors.BadRequest(c, "Invalid item ID")
		return
	}

	userID, exists := middleware.GetUserID(c)
	if !exists {
		apierrors.Unauthorized(c, "Not authenticated")
		return
	}

	if err := h.itemService.Delete(id, userID); err != nil {
		respondItemError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondItemError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrItemNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrNotItemOwner):
		apierrors.Forbidden(c, err.Error())
	case errors.Is(err, services.ErrTitleRequired),
		errors.Is(err, services.ErrTooManyImages),
		errors.Is(err, services.ErrInvalidImageType):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrFailedToSaveImage):
		apierrors.InternalError(c, err.Error())
	default:
		apierrors.InternalError(c, "Internal server error")
	}
}
