package gorm

import (
	"fmt"

	"gorm.io/gorm"
)

// AutoMigrate creates or updates the schema, including the named unique
// indexes and foreign keys the error translation relies on.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(allModels()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
