package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción
const (
	TransactionTypeBuy  = "BUY"
	TransactionTypeSell = "SELL"
)

type Transaction struct {
	ID              string          `json:"id"`
	UserID          string          `json:"user_id"`
	AssetID         string          `json:"asset_id"`
	AssetTicker     string          `json:"asset_ticker,omitempty"`
	AssetName       string          `json:"asset_name,omitempty"`
	TransactionType string          `json:"transaction_type"`
	Quantity        decimal.Decimal `json:"quantity"`
	Price           decimal.Decimal `json:"price"`
	TotalValue      decimal.Decimal `json:"total_value"`
	Date            time.Time       `json:"date"`
	Note            string          `json:"note,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

// TransactionInput es el payload para crear o actualizar una transacción.
// Cantidad y precio llegan como números JSON y se convierten a decimal
// con 6 y 2 decimales respectivamente.
type TransactionInput struct {
	AssetID         string    `json:"asset_id" binding:"required"`
	TransactionType string    `json:"transaction_type" binding:"required,oneof=BUY SELL"`
	Quantity        float64   `json:"quantity" binding:"required,gt=0"`
	Price           float64   `json:"price" binding:"required,gt=0"`
	Date            time.Time `json:"date" binding:"required"`
	Note            string    `json:"note,omitempty"`
}

// DecimalQuantity devuelve la cantidad normalizada a 6 decimales
func (in *TransactionInput) DecimalQuantity() decimal.Decimal {
	return decimal.NewFromFloat(in.Quantity).Round(6)
}

// DecimalPrice devuelve el precio normalizado a 2 decimales
func (in *TransactionInput) DecimalPrice() decimal.Decimal {
	return decimal.NewFromFloat(in.Price).Round(2)
}
