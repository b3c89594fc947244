package repository

import (
	"database/sql"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

type PortfolioRepository struct {
	db *sql.DB
}

func NewPortfolioRepository(db *sql.DB) *PortfolioRepository {
	return &PortfolioRepository{db: db}
}

// assetAccumulator acumula las transacciones de un activo durante el recorrido
type assetAccumulator struct {
	id           string
	ticker       string
	name         string
	assetType    string
	currentPrice decimal.NullDecimal
	buyQuantity  decimal.Decimal
	sellQuantity decimal.Decimal
	buyCost      decimal.Decimal // Σ(precio × cantidad) de las compras
}

// GetPortfolioSummary calcula el resumen del portafolio del usuario.
// Es una lectura pura: una sola consulta sobre el ledger y una reducción
// lineal por activo, sin mutar estado.
//
// Por cada activo que el usuario haya operado:
//   - cantidad actual = Σ compras − Σ ventas; si es ≤ 0 el activo se omite
//   - costo promedio ponderado solo sobre las compras; las ventas nunca
//     ajustan la base de costo (no hay tracking de lotes)
//   - valor de mercado = cantidad × cotización actual (0 si no hay cotización)
//   - retorno = valor de mercado − valor invertido, con guardas de división
//     por cero que degradan a 0 en lugar de fallar
func (r *PortfolioRepository) GetPortfolioSummary(userID string) (*models.PortfolioSummary, error) {
	query := `
		SELECT a.id, a.ticker, a.name, a.asset_type, a.current_price,
		       t.transaction_type, t.quantity, t.price
		FROM transactions t
		JOIN assets a ON a.id = t.asset_id
		WHERE t.user_id = $1
		ORDER BY a.ticker, a.id`

	rows, err := r.db.Query(query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	accumulators := make(map[string]*assetAccumulator)
	var order []string

	for rows.Next() {
		var (
			id, ticker, name, assetType, txType string
			currentPrice                        decimal.NullDecimal
			quantity, price                     decimal.Decimal
		)
		err := rows.Scan(&id, &ticker, &name, &assetType, &currentPrice, &txType, &quantity, &price)
		if err != nil {
			return nil, err
		}

		acc, exists := accumulators[id]
		if !exists {
			acc = &assetAccumulator{
				id:           id,
				ticker:       ticker,
				name:         name,
				assetType:    assetType,
				currentPrice: currentPrice,
			}
			accumulators[id] = acc
			order = append(order, id)
		}

		switch txType {
		case models.TransactionTypeBuy:
			acc.buyQuantity = acc.buyQuantity.Add(quantity)
			acc.buyCost = acc.buyCost.Add(price.Mul(quantity))
		case models.TransactionTypeSell:
			acc.sellQuantity = acc.sellQuantity.Add(quantity)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summary := &models.PortfolioSummary{
		Assets: []models.AssetSummary{},
	}

	for _, id := range order {
		acc := accumulators[id]

		// Cantidad actual = compras − ventas; si ya no posee el activo se omite
		currentQuantity := acc.buyQuantity.Sub(acc.sellQuantity)
		if currentQuantity.Sign() <= 0 {
			continue
		}

		// Costo promedio ponderado sobre todas las compras
		avgCost := decimal.Zero
		if acc.buyQuantity.Sign() > 0 {
			avgCost = acc.buyCost.Div(acc.buyQuantity)
		}

		// Cotización faltante se trata como 0
		currentPrice := decimal.Zero
		if acc.currentPrice.Valid {
			currentPrice = acc.currentPrice.Decimal
		}

		marketValue := currentQuantity.Mul(currentPrice)
		investedValue := currentQuantity.Mul(avgCost)
		assetReturn := marketValue.Sub(investedValue)

		returnPercentage := decimal.Zero
		if investedValue.Sign() > 0 {
			returnPercentage = assetReturn.Div(investedValue).Mul(decimal.NewFromInt(100))
		}

		summary.TotalValue = summary.TotalValue.Add(marketValue)
		summary.TotalInvested = summary.TotalInvested.Add(investedValue)

		summary.Assets = append(summary.Assets, models.AssetSummary{
			ID:               acc.id,
			Ticker:           acc.ticker,
			Name:             acc.name,
			Type:             acc.assetType,
			Quantity:         currentQuantity,
			AvgCost:          avgCost,
			CurrentPrice:     currentPrice,
			MarketValue:      marketValue,
			InvestedValue:    investedValue,
			Return:           assetReturn,
			ReturnPercentage: returnPercentage,
		})
	}

	summary.TotalReturn = summary.TotalValue.Sub(summary.TotalInvested)
	if summary.TotalInvested.Sign() > 0 {
		summary.ReturnPercentage = summary.TotalReturn.Div(summary.TotalInvested).Mul(decimal.NewFromInt(100))
	}

	return summary, nil
}
