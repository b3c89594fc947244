package database

import (
	"context"
	"log"
	"os"

	"github.com/go-redis/redis/v8"
)

// RDB es el cliente global de Redis. Puede ser nil si no hay Redis
// configurado; los servicios que lo usan deben tolerarlo.
var RDB *redis.Client

// Ctx es el contexto para las operaciones de Redis
var Ctx = context.Background()

func InitRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		log.Println("REDIS_ADDR no configurado, la caché de precios queda deshabilitada")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       0,
	})

	if err := client.Ping(Ctx).Err(); err != nil {
		log.Printf("No se pudo conectar a Redis en %s: %v", addr, err)
		return
	}

	RDB = client
}
