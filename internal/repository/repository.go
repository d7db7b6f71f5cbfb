package repository

import (
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/utils"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// CreateWithPhones creates a user and their phone numbers within a
	// single transaction
	CreateWithPhones(user *models.User, phoneNumbers []string) error

	// FindByID finds a user by ID with phones preloaded
	FindByID(id uint64) (*models.User, error)

	// FindByUsername finds a user by username
	FindByUsername(username string) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// Update persists changes to a user
	Update(user *models.User) error
}

// ItemFilter holds filtering options for listing items
type ItemFilter struct {
	OwnerID    *uint64
	CategoryID *uint64
	Available  *bool
	Pagination utils.PaginationParams
}

// ItemRepository defines the interface for item and category data access
type ItemRepository interface {
	// CreateWithImages creates an item, upserting its category when the
	// referenced ID is unknown and attaching image records, all within a
	// single transaction
	CreateWithImages(item *models.Item, imageNames []string) error

	// FindByID finds an item by ID with images preloaded
	FindByID(id uint64) (*models.Item, error)

	// List retrieves items with filtering and pagination
	List(filter ItemFilter) ([]models.Item, int64, error)

	// Update persists changes to an item
	Update(item *models.Item) error

	// Delete removes an item and its image records within a single
	// transaction, returning the removed image names
	Delete(item *models.Item) ([]string, error)
}

// TransactionRepository defines the interface for transaction data access
type TransactionRepository interface {
	// Create creates a new pending transaction
	Create(transaction *models.Transaction) error

	// FindByID finds a transaction by ID
	FindByID(id uint64) (*models.Transaction, error)

	// ListByUser lists transactions where the user is buyer or seller
	ListByUser(userID uint64) ([]models.Transaction, error)

	// Cancel marks a pending transaction cancelled; a row that is no
	// longer pending yields ErrNotPending
	Cancel(transaction *models.Transaction) error

	// Complete marks a pending transaction completed and flips the
	// referenced item to unavailable; both writes commit or roll back
	// together, and a row that is no longer pending yields ErrNotPending
	Complete(transaction *models.Transaction) error
}

// WishlistRepository defines the interface for wishlist data access
type WishlistRepository interface {
	// Create adds an entry to a user's wishlist
	Create(entry *models.WishlistEntry) error

	// Find looks up the entry for a (user, item) pair
	Find(userID, itemID uint64) (*models.WishlistEntry, error)

	// ListByUser lists a user's wishlist entries with items preloaded
	ListByUser(userID uint64) ([]models.WishlistEntry, error)

	// Delete removes an entry
	Delete(entry *models.WishlistEntry) error
}

// MessageRepository defines the interface for message data access
type MessageRepository interface {
	// Create appends a message
	Create(message *models.Message) error

	// ListConversation lists messages between two users in both
	// directions, oldest first
	ListConversation(userID, peerID uint64) ([]models.Message, error)

	// MarkRead marks every message from peer to user as read
	MarkRead(userID, peerID uint64) error
}
