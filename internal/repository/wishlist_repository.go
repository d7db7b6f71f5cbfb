package repository

import (
	"github.com/harukik/secondhand-market-api/internal/models"
	"gorm.io/gorm"
)

// GormWishlistRepository is a GORM implementation of WishlistRepository
type GormWishlistRepository struct {
	db *gorm.DB
}

// NewWishlistRepository creates a new WishlistRepository
func NewWishlistRepository(db *gorm.DB) WishlistRepository {
	return &GormWishlistRepository{db: db}
}

// Create adds an entry to a user's wishlist
func (r *GormWishlistRepository) Create(entry *models.WishlistEntry) error {
	return r.db.Create(entry).Error
}

// Find looks up the entry for a (user, item) pair
func (r *GormWishlistRepository) Find(userID, itemID uint64) (*models.WishlistEntry, error) {
	var entry models.WishlistEntry
	err := r.db.
		Where("user_id = ? AND item_id = ?", userID, itemID).
		First(&entry).Error
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListByUser lists a user's wishlist entries with items preloaded
func (r *GormWishlistRepository) ListByUser(userID uint64) ([]models.WishlistEntry, error) {
	var entries []models.WishlistEntry
	err := r.db.
		Preload("Item").
		Where("user_id = ?", userID).
		Order("added_date DESC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Delete removes an entry
func (r *GormWishlistRepository) Delete(entry *models.WishlistEntry) error {
	return r.db.Delete(entry).Error
}
