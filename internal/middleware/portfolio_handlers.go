package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetPortfolioSummary devuelve el resumen del portafolio del usuario:
// valor total, total invertido, retorno absoluto y porcentual, y el
// desglose por activo. Se recalcula en cada petición.
func GetPortfolioSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	summary, err := portfolioRepo.GetPortfolioSummary(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al calcular el resumen del portafolio"})
		return
	}

	c.JSON(http.StatusOK, summary)
}
