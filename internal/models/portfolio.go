package models

import "github.com/shopspring/decimal"

// AssetSummary es el desglose por activo dentro del resumen del portafolio
type AssetSummary struct {
	ID               string          `json:"id"`
	Ticker           string          `json:"ticker"`
	Name             string          `json:"name"`
	Type             string          `json:"type"`
	Quantity         decimal.Decimal `json:"quantity"`
	AvgCost          decimal.Decimal `json:"avg_cost"`
	CurrentPrice     decimal.Decimal `json:"current_price"`
	MarketValue      decimal.Decimal `json:"market_value"`
	InvestedValue    decimal.Decimal `json:"invested_value"`
	Return           decimal.Decimal `json:"return"`
	ReturnPercentage decimal.Decimal `json:"return_percentage"`
}

// PortfolioSummary es el resumen completo del portafolio de un usuario.
// Se recalcula en cada petición, nunca se persiste.
type PortfolioSummary struct {
	TotalValue       decimal.Decimal `json:"total_value"`
	TotalInvested    decimal.Decimal `json:"total_invested"`
	TotalReturn      decimal.Decimal `json:"total_return"`
	ReturnPercentage decimal.Decimal `json:"return_percentage"`
	Assets           []AssetSummary  `json:"assets"`
}
