package repository

import (
	"database/sql"
	"errors"
	"time"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/shopspring/decimal"
)

var ErrAssetNotFound = errors.New("activo no encontrado")

type AssetRepository struct {
	db *sql.DB
}

func NewAssetRepository(db *sql.DB) *AssetRepository {
	return &AssetRepository{db: db}
}

func (r *AssetRepository) CreateAsset(asset *models.Asset) error {
	query := `
		INSERT INTO assets (id, ticker, name, asset_type, current_price, last_update)
		VALUES ($1, $2, $3, $4, $5, $6)`

	asset.LastUpdate = time.Now()
	_, err := r.db.Exec(query,
		asset.ID,
		asset.Ticker,
		asset.Name,
		asset.AssetType,
		asset.CurrentPrice,
		asset.LastUpdate,
	)
	return err
}

func (r *AssetRepository) GetAssets() ([]models.Asset, error) {
	query := `
		SELECT id, ticker, name, asset_type, current_price, last_update
		FROM assets
		ORDER BY ticker`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	assets := []models.Asset{}
	for rows.Next() {
		var asset models.Asset
		err := rows.Scan(
			&asset.ID,
			&asset.Ticker,
			&asset.Name,
			&asset.AssetType,
			&asset.CurrentPrice,
			&asset.LastUpdate,
		)
		if err != nil {
			return nil, err
		}
		assets = append(assets, asset)
	}
	return assets, rows.Err()
}

func (r *AssetRepository) GetAssetByID(id string) (*models.Asset, error) {
	asset := &models.Asset{}
	query := `
		SELECT id, ticker, name, asset_type, current_price, last_update
		FROM assets
		WHERE id = $1`

	err := r.db.QueryRow(query, id).Scan(
		&asset.ID,
		&asset.Ticker,
		&asset.Name,
		&asset.AssetType,
		&asset.CurrentPrice,
		&asset.LastUpdate,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAssetNotFound
	}

	return asset, err
}

// UpdateAsset reemplaza todos los campos editables del activo y
// actualiza last_update, igual que un save completo
func (r *AssetRepository) UpdateAsset(asset *models.Asset) error {
	query := `
		UPDATE assets
		SET ticker = $1, name = $2, asset_type = $3, current_price = $4, last_update = $5
		WHERE id = $6`

	asset.LastUpdate = time.Now()
	result, err := r.db.Exec(query,
		asset.Ticker,
		asset.Name,
		asset.AssetType,
		asset.CurrentPrice,
		asset.LastUpdate,
		asset.ID,
	)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

func (r *AssetRepository) DeleteAsset(id string) error {
	query := `DELETE FROM assets WHERE id = $1`

	result, err := r.db.Exec(query, id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// UpdateAssetPrice persiste la última cotización conocida del activo
func (r *AssetRepository) UpdateAssetPrice(id string, price decimal.Decimal) error {
	query := `
		UPDATE assets
		SET current_price = $1, last_update = $2
		WHERE id = $3`

	result, err := r.db.Exec(query, price, time.Now(), id)
	if err != nil {
		return err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrAssetNotFound
	}
	return nil
}

// UpdatePricesByTicker actualiza la cotización de todos los activos con el
// ticker indicado (el ticker no es único en el registro). Devuelve cuántos
// activos fueron actualizados.
func (r *AssetRepository) UpdatePricesByTicker(ticker string, price decimal.Decimal) (int64, error) {
	query := `
		UPDATE assets
		SET current_price = $1, last_update = $2
		WHERE ticker = $3`

	result, err := r.db.Exec(query, price, time.Now(), ticker)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
