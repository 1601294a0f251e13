package database

import (
	"fmt"

	"supplier-ledger-backend/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all models.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Supplier{},
		&models.Product{},
		&models.Invoice{},
		&models.Department{},
		&models.Document{},
		&models.Todo{},
		&models.SpendingRecord{},
		&models.ImportBatch{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
