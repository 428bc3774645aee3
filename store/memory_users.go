package store

import (
	"sync"
	"time"

	"github.com/abishek204/dress-shop/models"
)

type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User // keyed by email
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) Create(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[u.Email]; ok {
		return ErrConflict
	}
	u.CreatedAt = time.Now()
	s.users[u.Email] = *u
	return nil
}

func (s *MemoryUserStore) FindByEmail(email string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[email]
	if !ok {
		return models.User{}, ErrNotFound
	}
	return user, nil
}
