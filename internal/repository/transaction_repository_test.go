package repository

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/harukik/secondhand-market-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupMockRepo(t *testing.T) (TransactionRepository, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	db, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	return NewTransactionRepository(db), mock
}

func TestCompleteCommitsBothWrites(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `items` SET `status`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	transaction := &models.Transaction{
		ID:     7,
		ItemID: 42,
		Status: models.TransactionStatusPending,
	}

	require.NoError(t, repo.Complete(transaction))
	require.Equal(t, models.TransactionStatusCompleted, transaction.Status)
	require.NotNil(t, transaction.CompletionDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

// If the item-status flip fails, the transaction-row update must roll
// back with it; a half-applied completion is never committed.
func TestCompleteRollsBackOnItemFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE `items` SET `status`").
		WillReturnError(errors.New("connection lost"))
	mock.ExpectRollback()

	transaction := &models.Transaction{
		ID:     7,
		ItemID: 42,
		Status: models.TransactionStatusPending,
	}

	err := repo.Complete(transaction)
	require.ErrorIs(t, err, ErrReleaseItem)

	// The in-memory row is untouched after rollback.
	require.Equal(t, models.TransactionStatusPending, transaction.Status)
	require.Nil(t, transaction.CompletionDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCompleteRollsBackOnTransactionFailure(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET").
		WillReturnError(errors.New("deadlock detected"))
	mock.ExpectRollback()

	transaction := &models.Transaction{
		ID:     7,
		ItemID: 42,
		Status: models.TransactionStatusPending,
	}

	err := repo.Complete(transaction)
	require.ErrorIs(t, err, ErrCompleteTransaction)
	require.Equal(t, models.TransactionStatusPending, transaction.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}

// Completion only applies to a row still pending in the database. When
// another actor got there first the guarded update matches nothing and
// the stored completion_date survives untouched.
func TestCompleteSkipsAlreadyTerminalRow(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET .* WHERE transaction_id = \\? AND status = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	transaction := &models.Transaction{
		ID:     7,
		ItemID: 42,
		Status: models.TransactionStatusPending,
	}

	err := repo.Complete(transaction)
	require.ErrorIs(t, err, ErrNotPending)
	require.Equal(t, models.TransactionStatusPending, transaction.Status)
	require.Nil(t, transaction.CompletionDate)

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelSkipsAlreadyTerminalRow(t *testing.T) {
	repo, mock := setupMockRepo(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `transactions` SET `status`=\\? WHERE transaction_id = \\? AND status = \\?").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	transaction := &models.Transaction{
		ID:     7,
		ItemID: 42,
		Status: models.TransactionStatusPending,
	}

	err := repo.Cancel(transaction)
	require.ErrorIs(t, err, ErrNotPending)
	require.Equal(t, models.TransactionStatusPending, transaction.Status)

	require.NoError(t, mock.ExpectationsWereMet())
}
