package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de activo soportados
const (
	AssetTypeStock  = "STOCK"
	AssetTypeCrypto = "CRYPTO"
	AssetTypeFund   = "FUND"
)

type Asset struct {
	ID           string              `json:"id"`
	Ticker       string              `json:"ticker"`
	Name         string              `json:"name"`
	AssetType    string              `json:"asset_type"`
	CurrentPrice decimal.NullDecimal `json:"current_price"`
	LastUpdate   time.Time           `json:"last_update"`
}

// AssetInput es el payload para crear o reemplazar un activo
type AssetInput struct {
	Ticker       string   `json:"ticker" binding:"required,max=20"`
	Name         string   `json:"name" binding:"required,max=100"`
	AssetType    string   `json:"asset_type" binding:"required,oneof=STOCK CRYPTO FUND"`
	CurrentPrice *float64 `json:"current_price" binding:"omitempty,gt=0"`
}

// AssetPatchInput es el payload para actualizaciones parciales
type AssetPatchInput struct {
	Ticker       *string  `json:"ticker" binding:"omitempty,max=20"`
	Name         *string  `json:"name" binding:"omitempty,max=100"`
	AssetType    *string  `json:"asset_type" binding:"omitempty,oneof=STOCK CRYPTO FUND"`
	CurrentPrice *float64 `json:"current_price" binding:"omitempty,gt=0"`
}
