package repository

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/harukik/secondhand-market-api/internal/database"
	"github.com/harukik/secondhand-market-api/internal/models"
	"gorm.io/gorm"
)

// GormItemRepository is a GORM implementation of ItemRepository
type GormItemRepository struct {
	db *gorm.DB
}

var (
	// ErrCreateItem is returned when creating the item row fails inside the listing transaction.
	ErrCreateItem = errors.New("item repository: create item failed")
	// ErrCreateImage is returned when creating an image row fails inside the listing transaction.
	ErrCreateImage = errors.New("item repository: create image failed")
	// ErrUpsertCategory is returned when the category upsert fails inside the listing transaction.
	ErrUpsertCategory = errors.New("item repository: upsert category failed")
)

// NewItemRepository creates a new ItemRepository
func NewItemRepository(db *gorm.DB) ItemRepository {
	return &GormItemRepository{db: db}
}

// CreateWithImages creates the item, its category when missing, and its
// image records atomically. The category upsert is intentional: an
// unknown category_id becomes a new category named after its ID.
func (r *GormItemRepository) CreateWithImages(item *models.Item, imageNames []string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var category models.Category
		err := tx.First(&category, item.CategoryID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			category = models.Category{
				ID:   item.CategoryID,
				Name: strconv.FormatUint(item.CategoryID, 10),
			}
			if err := tx.Create(&category).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrUpsertCategory, err)
			}
		} else if err != nil {
			return fmt.Errorf("%w: %v", ErrUpsertCategory, err)
		}

		item.TotalImages = len(imageNames)
		if err := tx.Create(item).Error; err != nil {
			return fmt.Errorf("%w: %v", ErrCreateItem, err)
		}

		for _, name := range imageNames {
			image := models.ItemImage{ItemID: item.ID, ImageDataName: name}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("%w: %v", ErrCreateImage, err)
			}
			item.Images = append(item.Images, image)
		}

		return nil
	})
}

// FindByID finds an item by ID
func (r *GormItemRepository) FindByID(id uint64) (*models.Item, error) {
	var item models.Item
	if err := r.db.Preload("Images").First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// List retrieves items with filtering and pagination
func (r *GormItemRepository) List(filter ItemFilter) ([]models.Item, int64, error) {
	query := r.db.Model(&models.Item{})

	if filter.OwnerID != nil {
		query = query.Where("owner_id = ?", *filter.OwnerID)
	}
	if filter.CategoryID != nil {
		query = query.Where("category = ?", *filter.CategoryID)
	}
	if filter.Available != nil {
		query = query.Where("status = ?", *filter.Available)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = query.Preload("Images").Order("post_date DESC")
	if filter.Pagination.Limit > 0 {
		query = query.Scopes(database.Paginate(filter.Pagination))
	}

	var items []models.Item
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// Update persists changes to an item
func (r *GormItemRepository) Update(item *models.Item) error {
	return r.db.Save(item).Error
}

// Delete removes the item and its image records atomically and reports
// which blob names became orphaned.
func (r *GormItemRepository) Delete(item *models.Item) ([]string, error) {
	var names []string
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var images []models.ItemImage
		if err := tx.Where("item_id = ?", item.ID).Find(&images).Error; err != nil {
			return err
		}
		for _, image := range images {
			names = append(names, image.ImageDataName)
		}

		if err := tx.Where("item_id = ?", item.ID).Delete(&models.ItemImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(item).Error
	})
	if err != nil {
		return nil, err
	}
	return names, nil
}
