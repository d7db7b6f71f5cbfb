package services

import (
	"errors"
	"fmt"

	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/harukik/secondhand-market-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrItemNotFound        = errors.New("item not found")
	ErrItemUnavailable     = errors.New("item is no longer available")
	ErrSelfTransaction     = errors.New("cannot create a transaction on your own item")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNotParticipant      = errors.New("only the buyer or seller can update this transaction")
	ErrInvalidTransition   = errors.New("transaction is already in a terminal state")
	ErrInvalidStatus       = errors.New("status must be completed or cancelled")
)

// TransactionService governs the transaction lifecycle: pending at
// creation, then exactly one transition to completed or cancelled.
type TransactionService struct {
	transactionRepo repository.TransactionRepository
	itemRepo        repository.ItemRepository
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(transactionRepo repository.TransactionRepository, itemRepo repository.ItemRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		itemRepo:        itemRepo,
	}
}

// Create opens a pending transaction on an available item. The seller
// is captured from the item's current owner; the item itself stays
// available until completion.
func (s *TransactionService) Create(itemID, buyerID uint64) (*models.Transaction, error) {
	item, err := s.itemRepo.FindByID(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrItemNotFound
		}
		return nil, fmt.Errorf("failed to find item: %w", err)
	}

	if !item.Status {
		return nil, ErrItemUnavailable
	}
	if item.OwnerID == buyerID {
		return nil, ErrSelfTransaction
	}

	transaction := &models.Transaction{
		ItemID:   item.ID,
		BuyerID:  buyerID,
		SellerID: item.OwnerID,
		Status:   models.TransactionStatusPending,
	}

	if err := s.transactionRepo.Create(transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return transaction, nil
}

// UpdateStatus transitions a pending transaction to completed or
// cancelled. Only the buyer or seller may act, and terminal states
// accept no further updates. Completion flips the item to unavailable
// atomically with the status change.
func (s *TransactionService) UpdateStatus(transactionID uint64, newStatus models.TransactionStatus, actorID uint64) (*models.Transaction, error) {
	if newStatus != models.TransactionStatusCompleted && newStatus != models.TransactionStatusCancelled {
		return nil, ErrInvalidStatus
	}

	transaction, err := s.transactionRepo.FindByID(transactionID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}

	if actorID != transaction.BuyerID && actorID != transaction.SellerID {
		return nil, ErrNotParticipant
	}

	if transaction.Status.Terminal() {
		return nil, ErrInvalidTransition
	}

	switch newStatus {
	case models.TransactionStatusCompleted:
		if err := s.transactionRepo.Complete(transaction); err != nil {
			if errors.Is(err, repository.ErrNotPending) {
				return nil, ErrInvalidTransition
			}
			return nil, fmt.Errorf("failed to complete transaction: %w", err)
		}
	case models.TransactionStatusCancelled:
		if err := s.transactionRepo.Cancel(transaction); err != nil {
			if errors.Is(err, repository.ErrNotPending) {
				return nil, ErrInvalidTransition
			}
			return nil, fmt.Errorf("failed to cancel transaction: %w", err)
		}
	}

	return transaction, nil
}

// ListForUser lists transactions where the user is buyer or seller.
func (s *TransactionService) ListForUser(userID uint64) ([]models.Transaction, error) {
	transactions, err := s.transactionRepo.ListByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return transactions, nil
}
