package store

import (
	"gorm.io/gorm"

	"github.com/abishek204/dress-shop/models"
)

// AutoMigrate creates or updates the tables backing the GORM stores.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.Cart{},
		&models.CartItem{},
	)
}
