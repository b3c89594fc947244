package main

import (
	"log"
	"os"

	"github.com/MatiasHerrera/Portfolio_Api.git/internal/database"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/middleware"
	routes "github.com/MatiasHerrera/Portfolio_Api.git/internal/server"
	"github.com/MatiasHerrera/Portfolio_Api.git/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

func main() {
	// Cargar variables de entorno
	if err := godotenv.Load(); err != nil {
		log.Printf("No se pudo cargar el archivo .env: %v", err)
	}

	// Los montos y cantidades se serializan como números JSON, no como strings
	decimal.MarshalJSONWithoutQuotes = true

	// Crear el router de Gin
	router := gin.Default()

	// Configurar CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization", "Admin-Key"}
	config.AllowCredentials = true
	config.ExposeHeaders = []string{"Content-Length"}
	router.Use(cors.New(config))

	// Inicializar base de datos
	if err := database.InitDB(); err != nil {
		log.Fatalf("Error al inicializar la base de datos: %v", err)
	}
	defer database.DB.Close()

	// Redis es opcional; sin él la caché de cotizaciones queda deshabilitada
	database.InitRedis()

	// Inicializar repositorios y proveedor de cotizaciones
	middleware.InitRepositories(database.DB)
	middleware.SetPriceFetcher(services.NewHTTPPriceFetcher(database.RDB))

	// Configurar las rutas
	routes.RegisterRoutes(router)

	// Iniciar el servidor
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Error al iniciar el servidor: %v", err)
	}
}
