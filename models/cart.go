package models

import "time"

type Cart struct {
	CartID    uint       `gorm:"primaryKey" json:"-"`
	UserID    string     `gorm:"uniqueIndex" json:"user"`                                    // Enforces ONE cart per user
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE" json:"items"` // Cascade delete items if cart is deleted
	CreatedAt time.Time  `json:"-"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// CartItem is one (product, size) line in a cart. Name, image and price
// are captured from the product at the moment the item is added.
type CartItem struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CartID    uint      `gorm:"index" json:"-"`
	ProductID uint      `gorm:"index" json:"product"`
	Name      string    `json:"name"`
	Image     string    `json:"image"`
	Price     float64   `json:"price"`
	Quantity  int       `json:"quantity"`
	Size      string    `json:"size"`
	AddedAt   time.Time `json:"addedAt"`
}
