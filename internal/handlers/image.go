package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	apierrors "github.com/harukik/secondhand-market-api/internal/errors"
	"github.com/harukik/secondhand-market-api/internal/storage"
)

// ImageHandler serves stored item images.
type ImageHandler struct {
	blobs *storage.Store
}

// NewImageHandler creates a new ImageHandler.
func NewImageHandler(blobs *storage.Store) *ImageHandler {
	return &ImageHandler{
		blobs: blobs,
	}
}

// GetImage serves an image file by its stored name.
func (h *ImageHandler) GetImage(c *gin.Context) {
	path, err := h.blobs.Path(c.Param("filename"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			apierrors.NotFound(c, "Image not found")
			return
		}
		apierrors.InternalError(c, "")
		return
	}

	c.File(path)
}
