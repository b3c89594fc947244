package repository

import (
	"database/sql"
	"errors"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
)

var ErrTransactionNotFound = errors.New("transacción no encontrada")

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) CreateTransaction(tx *models.Transaction) error {
	query := `
		INSERT INTO transactions (id, user_id, asset_id, transaction_type, quantity, price, date, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	_, err := r.db.Exec(query,
		tx.ID,
		tx.UserID,
		tx.AssetID,
		tx.TransactionType,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.Note,
	)
	return err
}

// GetUserTransactions devuelve las transacciones del usuario ordenadas por
// fecha descendente, con el ticker y el nombre del activo de cada una
func (r *TransactionRepository) GetUserTransactions(userID string) ([]models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.asset_id, a.ticker, a.name,
		       t.transaction_type, t.quantity, t.price, t.date, COALESCE(t.note, ''), t.created_at
		FROM transactions t
		JOIN assets a ON a.id = t.asset_id
		WHERE t.user_id = $1
		ORDER BY t.date DESC`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		err := rows.Scan(
			&tx.ID,
			&tx.UserID,
			&tx.AssetID,
			&tx.AssetTicker,
			&tx.AssetName,
			&tx.TransactionType,
			&tx.Quantity,
			&tx.Price,
			&tx.Date,
			&tx.Note,
			&tx.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		tx.TotalValue = tx.Quantity.Mul(tx.Price)
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// GetTransactionByID devuelve una transacción sin filtrar por usuario.
// El handler compara el dueño para distinguir 403 de 404.
func (r *TransactionRepository) GetTransactionByID(id string) (*models.Transaction, error) {
	query := `
		SELECT t.id, t.user_id, t.asset_id, a.ticker, a.name,
		       t.transaction_type, t.quantity, t.price, t.date, COALESCE(t.note, ''), t.created_at
		FROM transactions t
		JOIN assets a ON a.id = t.asset_id
		WHERE t.id = $1`

	var tx models.Transaction
	err := r.db.QueryRow(query, id).Scan(
		&tx.ID,
		&tx.UserID,
		&tx.AssetID,
		&tx.AssetTicker,
		&tx.AssetName,
		&tx.TransactionType,
		&tx.Quantity,
		&tx.Price,
		&tx.Date,
		&tx.Note,
		&tx.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, ErrTransactionNotFound
	}
	if err != nil {
		return nil, err
	}

	tx.TotalValue = tx.Quantity.Mul(tx.Price)
	return &tx, nil
}

func (r *TransactionRepository) UpdateTransaction(tx *models.Transaction) error {
	query := `
		UPDATE transactions
		SET asset_id = $1, transaction_type = $2, quantity = $3, price = $4, date = $5, note = $6
		WHERE id = $7 AND user_id = $8`

	result, err := r.db.Exec(query,
		tx.AssetID,
		tx.TransactionType,
		tx.Quantity,
		tx.Price,
		tx.Date,
		tx.Note,
		tx.ID,
		tx.UserID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}

func (r *TransactionRepository) DeleteTransaction(userID, id string) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`

	result, err := r.db.Exec(query, id, userID)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrTransactionNotFound
	}
	return nil
}
