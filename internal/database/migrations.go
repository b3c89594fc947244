package database

import (
	"log"
)

// RunMigrations ejecuta las migraciones necesarias para actualizar el esquema de la base de datos
func RunMigrations() error {
	log.Println("Ejecutando migraciones de la base de datos...")

	// Migración para añadir la columna note a transacciones creadas con el
	// esquema original. IF NOT EXISTS la hace idempotente.
	addNoteColumnSQL := `
	ALTER TABLE transactions ADD COLUMN IF NOT EXISTS note TEXT;
	`

	if _, err := DB.Exec(addNoteColumnSQL); err != nil {
		log.Printf("Error al añadir columna note: %v", err)
		return err
	}

	return nil
}
