package middleware

import (
	"net/http"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateAsset registra un nuevo activo operable
func CreateAsset(c *gin.Context) {
	var input models.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset := &models.Asset{
		ID:        uuid.New().String(),
		Ticker:    input.Ticker,
		Name:      input.Name,
		AssetType: input.AssetType,
	}
	if input.CurrentPrice != nil {
		asset.CurrentPrice = decimal.NullDecimal{
			Decimal: decimal.NewFromFloat(*input.CurrentPrice).Round(2),
			Valid:   true,
		}
	}

	if err := assetRepo.CreateAsset(asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el activo"})
		return
	}

	c.JSON(http.StatusCreated, asset)
}

// GetAssets lista todos los activos del registro
func GetAssets(c *gin.Context) {
	assets, err := assetRepo.GetAssets()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los activos"})
		return
	}

	c.JSON(http.StatusOK, assets)
}

// GetAsset obtiene un activo por su ID
func GetAsset(c *gin.Context) {
	asset, err := assetRepo.GetAssetByID(c.Param("id"))
	if err == repository.ErrAssetNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activo no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el activo"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

// UpdateAsset reemplaza un activo completo (PUT)
func UpdateAsset(c *gin.Context) {
	var input models.AssetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := assetRepo.GetAssetByID(c.Param("id"))
	if err == repository.ErrAssetNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activo no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el activo"})
		return
	}

	asset.Ticker = input.Ticker
	asset.Name = input.Name
	asset.AssetType = input.AssetType
	asset.CurrentPrice = decimal.NullDecimal{}
	if input.CurrentPrice != nil {
		asset.CurrentPrice = decimal.NullDecimal{
			Decimal: decimal.NewFromFloat(*input.CurrentPrice).Round(2),
			Valid:   true,
		}
	}

	if err := assetRepo.UpdateAsset(asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el activo"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

// PatchAsset actualiza solo los campos presentes en el payload (PATCH)
func PatchAsset(c *gin.Context) {
	var input models.AssetPatchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	asset, err := assetRepo.GetAssetByID(c.Param("id"))
	if err == repository.ErrAssetNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activo no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el activo"})
		return
	}

	if input.Ticker != nil {
		asset.Ticker = *input.Ticker
	}
	if input.Name != nil {
		asset.Name = *input.Name
	}
	if input.AssetType != nil {
		asset.AssetType = *input.AssetType
	}
	if input.CurrentPrice != nil {
		asset.CurrentPrice = decimal.NullDecimal{
			Decimal: decimal.NewFromFloat(*input.CurrentPrice).Round(2),
			Valid:   true,
		}
	}

	if err := assetRepo.UpdateAsset(asset); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el activo"})
		return
	}

	c.JSON(http.StatusOK, asset)
}

// DeleteAsset elimina un activo; sus transacciones caen en cascada
func DeleteAsset(c *gin.Context) {
	err := assetRepo.DeleteAsset(c.Param("id"))
	if err == repository.ErrAssetNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activo no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el activo"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Activo eliminado exitosamente"})
}

// GetAssetPrice consulta la cotización actual al proveedor, la persiste
// sobre el activo y devuelve {ticker, price}
func GetAssetPrice(c *gin.Context) {
	asset, err := assetRepo.GetAssetByID(c.Param("id"))
	if err == repository.ErrAssetNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Activo no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el activo"})
		return
	}

	if priceFetcher == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Proveedor de cotizaciones no configurado"})
		return
	}

	price, err := priceFetcher.GetPrice(asset.Ticker)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No se pudo obtener la cotización"})
		return
	}

	if err := assetRepo.UpdateAssetPrice(asset.ID, price); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al guardar la cotización"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ticker": asset.Ticker,
		"price":  price.InexactFloat64(),
	})
}
