package dto

import (
	"time"

	"github.com/harukik/secondhand-market-api/internal/models"
)

// TransactionDTO represents a transaction in API responses
type TransactionDTO struct {
	TransactionID   uint64                   `json:"transaction_id"`
	ItemID          uint64                   `json:"item_id"`
	BuyerID         uint64                   `json:"buyer_id"`
	SellerID        uint64                   `json:"seller_id"`
	TransactionDate time.Time                `json:"transaction_date"`
	Status          models.TransactionStatus `json:"status"`
	CompletionDate  *time.Time               `json:"completion_date"`
}

// ToTransactionDTO converts a transaction model to its API representation
func ToTransactionDTO(transaction models.Transaction) TransactionDTO {
	return TransactionDTO{
		TransactionID:   transaction.ID,
		ItemID:          transaction.ItemID,
		BuyerID:         transaction.BuyerID,
		SellerID:        transaction.SellerID,
		TransactionDate: transaction.TransactionDate,
		Status:          transaction.Status,
		CompletionDate:  transaction.CompletionDate,
	}
}
