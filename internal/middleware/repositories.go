package middleware

import (
	"database/sql"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/repository"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/services"
)

// Repositorios compartidos por todos los handlers
var (
	userRepo        *repository.UserRepository
	assetRepo       *repository.AssetRepository
	transactionRepo *repository.TransactionRepository
	portfolioRepo   *repository.PortfolioRepository
)

// Proveedor de cotizaciones usado por el endpoint de precio
var priceFetcher services.PriceFetcher

// InitRepositories inicializa los repositorios sobre la conexión dada.
// Debe llamarse antes de registrar las rutas.
func InitRepositories(db *sql.DB) {
	userRepo = repository.NewUserRepository(db)
	assetRepo = repository.NewAssetRepository(db)
	transactionRepo = repository.NewTransactionRepository(db)
	portfolioRepo = repository.NewPortfolioRepository(db)
}

// SetPriceFetcher hace disponible el proveedor de cotizaciones para los handlers
func SetPriceFetcher(fetcher services.PriceFetcher) {
	priceFetcher = fetcher
}
