package store

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/abishek204/dress-shop/models"
)

type GormProductStore struct {
	db *gorm.DB
}

func NewGormProductStore(db *gorm.DB) *GormProductStore {
	return &GormProductStore{db: db}
}

func (s *GormProductStore) List(category string) ([]models.Product, error) {
	query := s.db.Model(&models.Product{})

	category = strings.ToLower(strings.TrimSpace(category))
	if category != "" && category != "all" {
		query = query.Where("LOWER(category) = ?", category)
	}

	var products []models.Product
	if err := query.Order("id").Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *GormProductStore) Get(id uint) (models.Product, error) {
	var product models.Product
	err := s.db.First(&product, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, err
	}
	return product, nil
}

func (s *GormProductStore) Create(p *models.Product) error {
	var existing models.Product
	err := s.db.Where("name = ?", p.Name).First(&existing).Error
	if err == nil {
		return ErrConflict
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return s.db.Create(p).Error
}

func (s *GormProductStore) Update(p *models.Product) error {
	var existing models.Product
	err := s.db.First(&existing, p.ID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return err
	}
	return s.db.Save(p).Error
}

func (s *GormProductStore) Delete(id uint) error {
	result := s.db.Delete(&models.Product{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
