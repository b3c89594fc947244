package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTransaction(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		ID:              "tx-1",
		UserID:          "user-1",
		AssetID:         "a1",
		TransactionType: models.TransactionTypeBuy,
		Quantity:        decimal.RequireFromString("10.000000"),
		Price:           decimal.RequireFromString("100.00"),
		Date:            date,
	}

	mock.ExpectExec(`INSERT INTO transactions`).
		WithArgs("tx-1", "user-1", "a1", "BUY", tx.Quantity, tx.Price, date, "").
		WillReturnResult(sqlmock.NewResult(0, 1))

	repo := NewTransactionRepository(db)
	err = repo.CreateTransaction(tx)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetUserTransactions(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "asset_id", "ticker", "name",
		"transaction_type", "quantity", "price", "date", "note", "created_at",
	}).
		AddRow("tx-2", "user-1", "a1", "AAPL", "Apple Inc", "SELL", "2.000000", "180.00", date, "", created).
		AddRow("tx-1", "user-1", "a1", "AAPL", "Apple Inc", "BUY", "10.000000", "100.00", date.AddDate(0, -1, 0), "dca", created)

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := NewTransactionRepository(db)
	transactions, err := repo.GetUserTransactions("user-1")
	require.NoError(t, err)

	require.Len(t, transactions, 2)
	assert.Equal(t, "AAPL", transactions[0].AssetTicker)
	assert.Equal(t, "Apple Inc", transactions[0].AssetName)
	// total_value es derivado: cantidad × precio
	assert.True(t, transactions[0].TotalValue.Equal(decimal.RequireFromString("360")))
	assert.True(t, transactions[1].TotalValue.Equal(decimal.RequireFromString("1000")))
	assert.Equal(t, "dca", transactions[1].Note)
}

func TestGetUserTransactions_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "user_id", "asset_id", "ticker", "name",
		"transaction_type", "quantity", "price", "date", "note", "created_at",
	})

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("user-1").
		WillReturnRows(rows)

	repo := NewTransactionRepository(db)
	transactions, err := repo.GetUserTransactions("user-1")
	require.NoError(t, err)
	assert.NotNil(t, transactions)
	assert.Empty(t, transactions)
}

func TestGetTransactionByID_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`FROM transactions t`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "user_id", "asset_id", "ticker", "name",
			"transaction_type", "quantity", "price", "date", "note", "created_at",
		}))

	repo := NewTransactionRepository(db)
	_, err = repo.GetTransactionByID("missing")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestDeleteTransaction_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec(`DELETE FROM transactions`).
		WithArgs("tx-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTransactionRepository(db)
	err = repo.DeleteTransaction("user-1", "tx-1")
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}

func TestUpdateTransaction_ScopedToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	tx := &models.Transaction{
		ID:              "tx-1",
		UserID:          "user-1",
		AssetID:         "a1",
		TransactionType: models.TransactionTypeSell,
		Quantity:        decimal.RequireFromString("5.000000"),
		Price:           decimal.RequireFromString("120.00"),
		Date:            date,
	}

	// El UPDATE filtra por id y por dueño; cero filas afectadas significa
	// que la transacción no es del usuario
	mock.ExpectExec(`UPDATE transactions`).
		WithArgs("a1", "SELL", tx.Quantity, tx.Price, date, "", "tx-1", "user-1").
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := NewTransactionRepository(db)
	err = repo.UpdateTransaction(tx)
	assert.ErrorIs(t, err, ErrTransactionNotFound)
}
