package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/abishek204/dress-shop/models"
)

type MemoryProductStore struct {
	mu       sync.Mutex
	products map[uint]models.Product
	nextID   uint
}

func NewMemoryProductStore() *MemoryProductStore {
	return &MemoryProductStore{products: make(map[uint]models.Product)}
}

func (s *MemoryProductStore) List(category string) ([]models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	category = strings.ToLower(strings.TrimSpace(category))
	all := category == "" || category == "all"

	var products []models.Product
	for _, p := range s.products {
		if all || strings.ToLower(p.Category) == category {
			products = append(products, p)
		}
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

func (s *MemoryProductStore) Get(id uint) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return models.Product{}, ErrNotFound
	}
	return p, nil
}

func (s *MemoryProductStore) Create(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.products {
		if existing.Name == p.Name {
			return ErrConflict
		}
	}

	s.nextID++
	p.ID = s.nextID
	p.CreatedAt = time.Now()
	p.UpdatedAt = p.CreatedAt
	s.products[p.ID] = *p
	return nil
}

func (s *MemoryProductStore) Update(p *models.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.products[p.ID]
	if !ok {
		return ErrNotFound
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = time.Now()
	s.products[p.ID] = *p
	return nil
}

func (s *MemoryProductStore) Delete(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}
