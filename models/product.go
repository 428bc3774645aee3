package models

import (
	"strings"
	"time"
)

// Categories is the fixed set of product categories the shop sells.
var Categories = []string{"casual", "formal", "party", "traditional", "summer", "wedding"}

func IsValidCategory(category string) bool {
	category = strings.ToLower(category)
	for _, c := range Categories {
		if c == category {
			return true
		}
	}
	return false
}

type Product struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name         string    `gorm:"uniqueIndex;not null" json:"name"`
	Description  string    `json:"description"`
	Price        float64   `gorm:"not null" json:"price"`
	Category     string    `gorm:"index;not null" json:"category"`
	Images       []string  `gorm:"serializer:json" json:"images"`
	Sizes        []string  `gorm:"serializer:json" json:"sizes"`
	Colors       []string  `gorm:"serializer:json" json:"colors"`
	CountInStock int       `json:"countInStock"`
	Rating       float64   `json:"rating"`
	NumReviews   int       `json:"numReviews"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
