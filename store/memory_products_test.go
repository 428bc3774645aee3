package store

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abishek204/dress-shop/models"
)

func seedCatalog(t *testing.T, products *MemoryProductStore, category string, count int) {
	t.Helper()
	for i := 1; i <= count; i++ {
		p := models.Product{
			Name:     fmt.Sprintf("%s dress %d", category, i),
			Price:    1200,
			Category: category,
		}
		require.NoError(t, products.Create(&p))
	}
}

func TestListFiltersByCategory(t *testing.T) {
	products := NewMemoryProductStore()
	seedCatalog(t, products, "wedding", 3)
	seedCatalog(t, products, "casual", 2)

	wedding, err := products.List("wedding")
	require.NoError(t, err)
	require.Len(t, wedding, 3)
	for _, p := range wedding {
		require.Equal(t, "wedding", p.Category)
	}

	// Filter is case-insensitive.
	wedding, err = products.List("WEDDING")
	require.NoError(t, err)
	require.Len(t, wedding, 3)

	all, err := products.List("all")
	require.NoError(t, err)
	require.Len(t, all, 5)

	all, err = products.List("")
	require.NoError(t, err)
	require.Len(t, all, 5)
}

func TestCreateDuplicateNameIsConflict(t *testing.T) {
	products := NewMemoryProductStore()

	p := models.Product{Name: "Silk Saree", Price: 2500, Category: "traditional"}
	require.NoError(t, products.Create(&p))

	dup := models.Product{Name: "Silk Saree", Price: 900, Category: "casual"}
	require.ErrorIs(t, products.Create(&dup), ErrConflict)

	// Catalog unchanged by the failed create.
	all, err := products.List("")
	require.NoError(t, err)
	require.Len(t, all, 1)
	require.Equal(t, 2500.0, all[0].Price)
}

func TestGetUpdateDelete(t *testing.T) {
	products := NewMemoryProductStore()

	p := models.Product{Name: "Linen Shirt Dress", Price: 1100, Category: "summer"}
	require.NoError(t, products.Create(&p))
	require.NotZero(t, p.ID)

	got, err := products.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, "Linen Shirt Dress", got.Name)

	got.CountInStock = 7
	require.NoError(t, products.Update(&got))
	got, err = products.Get(p.ID)
	require.NoError(t, err)
	require.Equal(t, 7, got.CountInStock)

	require.NoError(t, products.Delete(p.ID))
	_, err = products.Get(p.ID)
	require.ErrorIs(t, err, ErrNotFound)
	require.ErrorIs(t, products.Delete(p.ID), ErrNotFound)
}

func TestUpdateMissingProductIsNotFound(t *testing.T) {
	products := NewMemoryProductStore()

	p := models.Product{ID: 404, Name: "Ghost Dress", Price: 10, Category: "party"}
	require.ErrorIs(t, products.Update(&p), ErrNotFound)
}

func TestSeedDemoCatalog(t *testing.T) {
	products := NewMemoryProductStore()
	SeedDemoCatalog(products)

	all, err := products.List("")
	require.NoError(t, err)
	require.Len(t, all, len(models.Categories)*demoProductsPerCategory)

	for _, category := range models.Categories {
		filtered, err := products.List(category)
		require.NoError(t, err)
		require.Len(t, filtered, demoProductsPerCategory)
		for _, p := range filtered {
			require.NotEmpty(t, p.Images)
			require.GreaterOrEqual(t, p.Price, 800.0)
			require.LessOrEqual(t, p.Price, 4500.0)
		}
	}
}
