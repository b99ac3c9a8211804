package database

import (
	"fmt"

	"charm-shop/internal/models"

	"gorm.io/gorm"
)

// AutoMigrate runs database schema migrations for all durable models.
// The product catalog is compiled in and has no table.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.User{},
		&models.CartItem{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
