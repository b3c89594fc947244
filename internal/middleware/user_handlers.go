package middleware

import (
	"net/http"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/models"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/repository"
	"github.com/gin-gonic/gin"
)

// UpdateUser actualiza el perfil del usuario autenticado
func UpdateUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	var input struct {
		Email string `json:"email" binding:"required,email"`
		Name  string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user := &models.User{
		ID:    userID,
		Email: input.Email,
		Name:  input.Name,
	}

	if err := userRepo.UpdateUser(user); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al actualizar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario actualizado exitosamente"})
}

// DeleteUser elimina la cuenta del usuario autenticado junto con sus transacciones
func DeleteUser(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Usuario no autenticado"})
		return
	}

	if err := userRepo.DeleteUser(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}

// GetUsers lista todos los usuarios (solo admin)
func GetUsers(c *gin.Context) {
	users, err := userRepo.GetAllUsers()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener los usuarios"})
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUser obtiene un usuario por su ID (solo admin)
func GetUser(c *gin.Context) {
	user, err := userRepo.GetUserById(c.Param("id"))
	if err == repository.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al obtener el usuario"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// DeleteUserByAdmin elimina un usuario por su ID (solo admin)
func DeleteUserByAdmin(c *gin.Context) {
	err := userRepo.DeleteUser(c.Param("id"))
	if err == repository.ErrUserNotFound {
		c.JSON(http.StatusNotFound, gin.H{"error": "Usuario no encontrado"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al eliminar el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado exitosamente"})
}
