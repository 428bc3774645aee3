package store

import (
	"errors"

	"github.com/abishek204/dress-shop/models"
)

// Sentinel errors shared by both store implementations. Handlers map
// these to HTTP statuses at the API boundary.
var (
	ErrNotFound = errors.New("record not found")
	ErrConflict = errors.New("duplicate record")
)

// DemoUserID is the fixed identity unauthenticated requests are
// attributed to when the server runs without a database.
const DemoUserID = "demo-user"

// ProductStore is the catalog: CRUD plus category filtering.
type ProductStore interface {
	// List returns all products, or only those in the given category.
	// The filter is case-insensitive; "" and "all" return everything.
	List(category string) ([]models.Product, error)

	// Get returns a single product or ErrNotFound.
	Get(id uint) (models.Product, error)

	// Create inserts a product and assigns its ID. Returns ErrConflict
	// if a product with the same name already exists.
	Create(p *models.Product) error

	// Update replaces the stored product fields. Returns ErrNotFound if
	// the product does not exist.
	Update(p *models.Product) error

	// Delete removes a product. Returns ErrNotFound if it does not exist.
	Delete(id uint) error
}

// CartStore maintains one cart per user and the line-item merge rule:
// at most one item per (product, size) pair.
type CartStore interface {
	// Get returns the user's cart, or an empty cart value (not an
	// error) if none exists yet.
	Get(userID string) (models.Cart, error)

	// AddItem merges the item into the user's cart: an existing
	// (product, size) line has its quantity incremented, otherwise the
	// item is appended with a fresh ID. The cart is created lazily;
	// created reports whether that happened.
	AddItem(userID string, item models.CartItem) (cart models.Cart, created bool, err error)

	// RemoveItem deletes the line with the given ID. A missing line is
	// a no-op; ErrNotFound is returned only when the user has no cart.
	RemoveItem(userID string, itemID uint) (models.Cart, error)

	// Clear empties the cart's items but keeps the cart record.
	// Returns ErrNotFound when the user has no cart.
	Clear(userID string) error
}

// UserStore is the account directory.
type UserStore interface {
	// Create registers an account. Returns ErrConflict if the email is
	// already taken.
	Create(u *models.User) error

	// FindByEmail returns the account or ErrNotFound.
	FindByEmail(email string) (models.User, error)
}
