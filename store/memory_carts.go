package store

import (
	"sync"
	"time"

	"github.com/abishek204/dress-shop/models"
)

// MemoryCartStore is the process-lifetime fallback used when no
// database is reachable. It applies the same merge rule as the GORM
// store; nothing survives a restart.
type MemoryCartStore struct {
	mu         sync.Mutex
	carts      map[string]*models.Cart
	nextCartID uint
	lastItemID uint
}

func NewMemoryCartStore() *MemoryCartStore {
	return &MemoryCartStore{carts: make(map[string]*models.Cart)}
}

// Item IDs are derived from the wall clock, bumped on collision so two
// adds in the same millisecond still get distinct IDs.
func (s *MemoryCartStore) nextItemID() uint {
	id := uint(time.Now().UnixMilli())
	if id <= s.lastItemID {
		id = s.lastItemID + 1
	}
	s.lastItemID = id
	return id
}

func (s *MemoryCartStore) Get(userID string) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return emptyCart(userID), nil
	}
	return copyCart(cart), nil
}

func (s *MemoryCartStore) AddItem(userID string, item models.CartItem) (models.Cart, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	created := false
	cart, ok := s.carts[userID]
	if !ok {
		s.nextCartID++
		cart = &models.Cart{
			CartID:    s.nextCartID,
			UserID:    userID,
			Items:     []models.CartItem{},
			CreatedAt: time.Now(),
		}
		s.carts[userID] = cart
		created = true
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ProductID == item.ProductID && cart.Items[i].Size == item.Size {
			cart.Items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		item.ID = s.nextItemID()
		item.CartID = cart.CartID
		item.AddedAt = time.Now()
		cart.Items = append(cart.Items, item)
	}
	cart.UpdatedAt = time.Now()

	return copyCart(cart), created, nil
}

func (s *MemoryCartStore) RemoveItem(userID string, itemID uint) (models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return models.Cart{}, ErrNotFound
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept
	cart.UpdatedAt = time.Now()

	return copyCart(cart), nil
}

func (s *MemoryCartStore) Clear(userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cart, ok := s.carts[userID]
	if !ok {
		return ErrNotFound
	}

	cart.Items = []models.CartItem{}
	cart.UpdatedAt = time.Now()
	return nil
}

// copyCart returns a value with its own items slice so callers never
// alias the store's state.
func copyCart(cart *models.Cart) models.Cart {
	out := *cart
	out.Items = make([]models.CartItem, len(cart.Items))
	copy(out.Items, cart.Items)
	return out
}
