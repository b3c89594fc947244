package middleware

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	svix "github.com/svix/svix-webhooks/go"
)

// pricePushPayload es el cuerpo que envía el proveedor de cotizaciones
type pricePushPayload struct {
	Prices []struct {
		Ticker string  `json:"ticker"`
		Price  float64 `json:"price"`
	} `json:"prices"`
}

// PriceWebhook recibe cotizaciones firmadas que el proveedor empuja y las
// persiste sobre todos los activos con el ticker correspondiente
func PriceWebhook(c *gin.Context) {
	webhookSecret := os.Getenv("PRICE_WEBHOOK_SECRET")
	if webhookSecret == "" {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Webhook de precios no configurado"})
		return
	}

	body, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No se pudo leer el cuerpo de la petición"})
		return
	}

	wh, err := svix.NewWebhook(webhookSecret)
	if err != nil {
		log.Printf("Error al inicializar la verificación del webhook: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al inicializar la verificación"})
		return
	}

	// Verificar la firma antes de tocar cualquier dato
	if err := wh.Verify(body, c.Request.Header); err != nil {
		log.Printf("Firma del webhook de precios inválida: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Firma inválida"})
		return
	}

	var payload pricePushPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payload JSON inválido"})
		return
	}

	var updated int64
	for _, quote := range payload.Prices {
		if quote.Ticker == "" || quote.Price <= 0 {
			continue
		}
		price := decimal.NewFromFloat(quote.Price).Round(2)
		n, err := assetRepo.UpdatePricesByTicker(quote.Ticker, price)
		if err != nil {
			log.Printf("Error al actualizar la cotización de %s: %v", quote.Ticker, err)
			continue
		}
		updated += n
	}

	c.JSON(http.StatusOK, gin.H{"updated": updated})
}
