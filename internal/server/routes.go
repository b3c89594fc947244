package routes

import (
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)

	// El proveedor de cotizaciones firma sus pushes con svix
	router.POST("/webhooks/prices", middleware.PriceWebhook)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		protected.POST("/assets", middleware.CreateAsset)
		protected.GET("/assets", middleware.GetAssets)
		protected.GET("/assets/:id", middleware.GetAsset)
		protected.PUT("/assets/:id", middleware.UpdateAsset)
		protected.PATCH("/assets/:id", middleware.PatchAsset)
		protected.DELETE("/assets/:id", middleware.DeleteAsset)
		protected.GET("/assets/:id/price", middleware.GetAssetPrice)

		protected.POST("/transactions", middleware.CreateTransaction)
		protected.GET("/transactions", middleware.GetUserTransactions)
		protected.GET("/transactions/:id", middleware.GetTransaction)
		protected.PUT("/transactions/:id", middleware.UpdateTransaction)
		protected.DELETE("/transactions/:id", middleware.DeleteTransaction)

		protected.GET("/portfolio/summary", middleware.GetPortfolioSummary)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
	}
}
