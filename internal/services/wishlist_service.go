package services

import (
	"errors"
	"fmt"

	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrAlreadyWishlisted = errors.New("item already in wishlist")
	ErrNotWishlisted     = errors.New("item not found in wishlist")
)

// WishlistService handles wishlist business logic.
type WishlistService struct {
	wishlistRepo repository.WishlistRepository
	itemRepo     repository.ItemRepository
}

// NewWishlistService creates a new WishlistService.
func NewWishlistService(wishlistRepo repository.WishlistRepository, itemRepo repository.ItemRepository) *WishlistService {
	return &WishlistService{
		wishlistRepo: wishlistRepo,
		itemRepo:     itemRepo,
	}
}

// Add puts an item on the user's wishlist. Each (user, item) pair may
// appear at most once.
func (s *WishlistService) Add(userID, itemID uint64) (*models.WishlistEntry, error) {
	if _, err := s.itemRepo.FindByID(itemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	if _, err := s.wishlistRepo.Find(userID, itemID); err == nil {
		return nil, ErrAlreadyWishlisted
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check wishlist: %w", err)
	}

	entry := &models.WishlistEntry{UserID: userID, ItemID: itemID}
	if err := s.wishlistRepo.Create(entry); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAlreadyWishlisted
		}
		return nil, fmt.Errorf("failed to add wishlist entry: %w", err)
	}

	return entry, nil
}

// List returns the user's wishlist entries.
func (s *WishlistService) List(userID uint64) ([]models.WishlistEntry, error) {
	entries, err := s.wishlistRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list wishlist: %w", err)
	}
	return entries, nil
}

// Remove takes an item off the user's wishlist.
func (s *WishlistService) Remove(userID, itemID uint64) error {
	entry, err := s.wishlistRepo.Find(userID, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotWishlisted
		}
		return fmt.Errorf("failed to find wishlist entry: %w", err)
	}

	if err := s.wishlistRepo.Delete(entry); err != nil {
		return fmt.Errorf("failed to remove wishlist entry: %w", err)
	}
	return nil
}
