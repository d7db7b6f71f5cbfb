package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/harukik/secondhand-market-api/internal/constants"
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"github.com/harukik/secondhand-market-api/internal/storage"
	"gorm.io/gorm"
)

var (
	ErrNotItemOwner      = errors.New("only the item owner can perform this action")
	ErrTitleRequired     = errors.New("title is required")
	ErrTooManyImages     = errors.New("too many images")
	ErrInvalidImageType  = errors.New("only JPEG and PNG images are allowed")
	ErrFailedToSaveImage = errors.New("failed to store image")
)

// ItemService handles item listing business logic.
type ItemService struct {
	itemRepo repository.ItemRepository
	blobs    *storage.Store
}

// NewItemService creates a new ItemService.
func NewItemService(itemRepo repository.ItemRepository, blobs *storage.Store) *ItemService {
	return &ItemService{
		itemRepo: itemRepo,
		blobs:    blobs,
	}
}

// ImageUpload is one uploaded image file.
type ImageUpload struct {
	ContentType string
	Data        []byte
}

// CreateItemInput represents input for creating a listing.
type CreateItemInput struct {
	Title        string
	Description  string
	Condition    string
	Price        *int64
	ExchangeType bool
	DesiredItem  *string
	CategoryID   uint64
	OwnerID      uint64
	Images       []ImageUpload
}

var imageExtensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
}

// Create stores the uploaded images and creates the listing. The
// category is upserted when the given ID is unknown.
func (s *ItemService) Create(input CreateItemInput) (*models.Item, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTitleRequired
	}
	if len(input.Images) > constants.MaxImagesPerItem {
		return nil, ErrTooManyImages
	}

	var imageNames []string
	for _, upload := range input.Images {
		ext, ok := imageExtensions[upload.ContentType]
		if !ok {
			return nil, ErrInvalidImageType
		}
		name, err := s.blobs.Save(upload.Data, ext)
		if err != nil {
			return nil, ErrFailedToSaveImage
		}
		imageNames = append(imageNames, name)
	}

	item := &models.Item{
		Title:        input.Title,
		Description:  input.Description,
		Condition:    input.Condition,
		OwnerID:      input.OwnerID,
		Price:        input.Price,
		ExchangeType: input.ExchangeType,
		Status:       true,
		DesiredItem:  input.DesiredItem,
		CategoryID:   input.CategoryID,
	}

	if err := s.itemRepo.CreateWithImages(item, imageNames); err != nil {
		// The listing failed; drop the blobs it would have referenced.
		for _, name := range imageNames {
			_ = s.blobs.Remove(name)
		}
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	return item, nil
}

// Get retrieves an item by ID.
func (s *ItemService) Get(id uint64) (*models.Item, error) {
	item, err := s.itemRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}
	return item, nil
}

// List retrieves items with filtering and pagination.
func (s *ItemService) List(filter repository.ItemFilter) ([]models.Item, int64, error) {
	items, total, err := s.itemRepo.List(filter)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list items: %w", err)
	}
	return items, total, nil
}

// UpdateItemInput holds the mutable listing fields. Nil fields are left
// untouched.
type UpdateItemInput struct {
	Title       *string
	Description *string
	Condition   *string
	Price       *int64
	DesiredItem *string
	Status      *bool
}

// Update applies owner edits to a listing.
func (s *ItemService) Update(id, actorID uint64, input UpdateItemInput) (*models.Item, error) {
	item, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if item.OwnerID != actorID {
		return nil, ErrNotItemOwner
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTitleRequired
		}
		item.Title = *input.Title
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.Condition != nil {
		item.Condition = *input.Condition
	}
	if input.Price != nil {
		item.Price = input.Price
	}
	if input.DesiredItem != nil {
		item.DesiredItem = input.DesiredItem
	}
	if input.Status != nil {
		item.Status = *input.Status
	}

	if err := s.itemRepo.Update(item); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return item, nil
}

// Delete removes a listing, its image records, and their stored blobs.
// Blob removal is best effort once the rows are gone.
func (s *ItemService) Delete(id, actorID uint64) error {
	item, err := s.Get(id)
	if err != nil {
		return err
	}
	if item.OwnerID != actorID {
		return ErrNotItemOwner
	}

	names, err := s.itemRepo.Delete(item)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	for _, name := range names {
		_ = s.blobs.Remove(name)
	}
	return nil
}
