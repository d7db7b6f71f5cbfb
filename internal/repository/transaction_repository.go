package repository

import (
	"errors"
	"fmt"
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
	"gorm.io/gorm"
)

// GormTransactionRepository is a GORM implementation of TransactionRepository
type GormTransactionRepository struct {
	db *gorm.DB
}

var (
	// ErrCompleteTransaction is returned when the transaction-row update fails inside the completion unit of work.
	ErrCompleteTransaction = errors.New("transaction repository: complete transaction failed")
	// ErrReleaseItem is returned when flipping the item to unavailable fails inside the completion unit of work.
	ErrReleaseItem = errors.New("transaction repository: update item status failed")
	// ErrCancelTransaction is returned when the cancellation update fails.
	ErrCancelTransaction = errors.New("transaction repository: cancel transaction failed")
	// ErrNotPending is returned when a transition finds the row already
	// committed to a terminal state by a concurrent update.
	ErrNotPending = errors.New("transaction repository: transaction is not pending")
)

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &GormTransactionRepository{db: db}
}

// Create creates a new pending transaction
func (r *GormTransactionRepository) Create(transaction *models.Transaction) error {
	return r.db.Create(transaction).Error
}

// FindByID finds a transaction by ID
func (r *GormTransactionRepository) FindByID(id uint64) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := r.db.First(&transaction, id).Error; err != nil {
		return nil, err
	}
	return &transaction, nil
}

// ListByUser lists transactions where the user is buyer or seller
func (r *GormTransactionRepository) ListByUser(userID uint64) ([]models.Transaction, error) {
	var transactions []models.Transaction
	err := r.db.
		Where("buyer_id = ? OR seller_id = ?", userID, userID).
		Order("transaction_date DESC").
		Find(&transactions).Error
	if err != nil {
		return nil, err
	}
	return transactions, nil
}

// Cancel marks a pending transaction cancelled. The status predicate
// makes the transition race-safe: a row another actor already moved to
// a terminal state matches no rows and stays untouched.
func (r *GormTransactionRepository) Cancel(transaction *models.Transaction) error {
	result := r.db.Model(&models.Transaction{}).
		Where("transaction_id = ? AND status = ?", transaction.ID, models.TransactionStatusPending).
		Update("status", models.TransactionStatusCancelled)
	if result.Error != nil {
		return fmt.Errorf("%w: %v", ErrCancelTransaction, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotPending
	}
	transaction.Status = models.TransactionStatusCancelled
	return nil
}

// Complete marks the transaction completed and the item unavailable in
// one unit of work. A failure in either write rolls back both, so a
// half-applied completion is never observable. The status predicate
// guards against two actors completing the same pending row: the loser
// matches no rows and the first completion_date is never overwritten.
func (r *GormTransactionRepository) Complete(transaction *models.Transaction) error {
	now := time.Now()
	return r.db.Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&models.Transaction{}).
			Where("transaction_id = ? AND status = ?", transaction.ID, models.TransactionStatusPending).
			Updates(map[string]interface{}{
				"status":          models.TransactionStatusCompleted,
				"completion_date": now,
			})
		if result.Error != nil {
			return fmt.Errorf("%w: %v", ErrCompleteTransaction, result.Error)
		}
		if result.RowsAffected == 0 {
			return ErrNotPending
		}

		err := tx.Model(&models.Item{}).
			Where("item_id = ?", transaction.ItemID).
			Update("status", false).Error
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReleaseItem, err)
		}

		transaction.Status = models.TransactionStatusCompleted
		transaction.CompletionDate = &now
		return nil
	})
}
