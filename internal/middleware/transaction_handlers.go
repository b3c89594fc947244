package middleware

import (
	"net/http"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CreateTransaction crea una nueva transacción para el usuario autenticado
func CreateTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var input models.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// Validar que el activo exista
	if _, err := assetRepo.GetAssetByID(input.AssetID); err != nil {
		if err == repository.ErrAssetNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Activo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al validar el activo"})
		return
	}

	transaction := &models.Transaction{
		ID:              uuid.New().String(),
		UserID:          userID,
		AssetID:         input.AssetID,
		TransactionType: input.TransactionType,
		Quantity:        input.DecimalQuantity(),
		Price:           input.DecimalPrice(),
		Date:            input.Date,
		Note:            input.Note,
	}
	transaction.TotalValue = transaction.Quantity.Mul(transaction.Price)

	if err := transactionRepo.CreateTransaction(transaction); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear la transacción"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Transacción creada exitosamente", "transaction": transaction})
}

// GetUserTransactions obtiene todas las transacciones del usuario autenticado
func GetUserTransactions(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	transactions, err := transactionRepo.GetUserTransactions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener las transacciones"})
		return
	}

	c.JSON(http.StatusOK, transactions)
}

// GetTransaction obtiene una transacción propia por su ID
func GetTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	transaction, err := transactionRepo.GetTransactionByID(c.Param("id"))
	if err == repository.ErrTransactionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la transacción"})
		return
	}

	if transaction.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para ver esta transacción"})
		return
	}

	c.JSON(http.StatusOK, transaction)
}

// UpdateTransaction actualiza una transacción existente del usuario
func UpdateTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	// Verificar que la transacción pertenezca al usuario
	existing, err := transactionRepo.GetTransactionByID(c.Param("id"))
	if err == repository.ErrTransactionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la transacción"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para modificar esta transacción"})
		return
	}

	var input models.TransactionInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := assetRepo.GetAssetByID(input.AssetID); err != nil {
		if err == repository.ErrAssetNotFound {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Activo no encontrado"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al validar el activo"})
		return
	}

	updated := &models.Transaction{
		ID:              existing.ID,
		UserID:          userID,
		AssetID:         input.AssetID,
		TransactionType: input.TransactionType,
		Quantity:        input.DecimalQuantity(),
		Price:           input.DecimalPrice(),
		Date:            input.Date,
		Note:            input.Note,
	}
	updated.TotalValue = updated.Quantity.Mul(updated.Price)

	if err := transactionRepo.UpdateTransaction(updated); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción actualizada exitosamente", "transaction": updated})
}

// DeleteTransaction elimina una transacción existente del usuario
func DeleteTransaction(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	existing, err := transactionRepo.GetTransactionByID(c.Param("id"))
	if err == repository.ErrTransactionNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transacción no encontrada"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener la transacción"})
		return
	}
	if existing.UserID != userID {
		c.JSON(http.StatusForbidden, gin.H{"error": "No tienes permiso para eliminar esta transacción"})
		return
	}

	if err := transactionRepo.DeleteTransaction(userID, existing.ID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar la transacción"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Transacción eliminada exitosamente"})
}
