package store

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/abishek204/dress-shop/models"
)

type GormCartStore struct {
	db *gorm.DB
}

func NewGormCartStore(db *gorm.DB) *GormCartStore {
	return &GormCartStore{db: db}
}

func (s *GormCartStore) Get(userID string) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Preload("Items").Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return emptyCart(userID), nil
	}
	if err != nil {
		return models.Cart{}, err
	}
	return cart, nil
}

func (s *GormCartStore) AddItem(userID string, item models.CartItem) (models.Cart, bool, error) {
	created := false

	err := s.db.Transaction(func(tx *gorm.DB) error {
		var cart models.Cart

		// Row lock serializes concurrent read-modify-write on the same
		// user's cart.
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("user_id = ?", userID).First(&cart).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			cart = models.Cart{UserID: userID}
			if err := tx.Create(&cart).Error; err != nil {
				return err
			}
			created = true
		} else if err != nil {
			return err
		}

		var existing models.CartItem
		err = tx.Where("cart_id = ? AND product_id = ? AND size = ?",
			cart.CartID, item.ProductID, item.Size).First(&existing).Error
		switch {
		case err == nil:
			existing.Quantity += item.Quantity
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			item.ID = 0
			item.CartID = cart.CartID
			item.AddedAt = time.Now()
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		default:
			return err
		}

		return tx.Model(&models.Cart{}).Where("cart_id = ?", cart.CartID).
			Update("updated_at", time.Now()).Error
	})
	if err != nil {
		return models.Cart{}, false, err
	}

	cart, err := s.Get(userID)
	return cart, created, err
}

func (s *GormCartStore) RemoveItem(userID string, itemID uint) (models.Cart, error) {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Cart{}, ErrNotFound
	}
	if err != nil {
		return models.Cart{}, err
	}

	// Deleting an item that is not in the cart is a no-op, not an error.
	if err := s.db.Where("cart_id = ? AND id = ?", cart.CartID, itemID).
		Delete(&models.CartItem{}).Error; err != nil {
		return models.Cart{}, err
	}

	return s.Get(userID)
}

func (s *GormCartStore) Clear(userID string) error {
	var cart models.Cart
	err := s.db.Where("user_id = ?", userID).First(&cart).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}

	return s.db.Where("cart_id = ?", cart.CartID).Delete(&models.CartItem{}).Error
}

func emptyCart(userID string) models.Cart {
	return models.Cart{UserID: userID, Items: []models.CartItem{}}
}
