package store

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/brianvoe/gofakeit/v7"

	"github.com/abishek204/dress-shop/models"
)

const demoProductsPerCategory = 20

// Verified full-size Unsplash URLs so demo images load reliably.
var demoPhotoPool = map[string][]string{
	"traditional": {
		"https://images.unsplash.com/photo-1583391733956-6c78276477e2?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1610030469983-98ef80b66a92?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1602216056096-3b40cc0c9944?auto=format&fit=crop&q=80&w=800",
	},
	"party": {
		"https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1566174053879-31528523f8ae?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1518611012118-696072aa579a?auto=format&fit=crop&q=80&w=800",
	},
	"casual": {
		"https://images.unsplash.com/photo-1434389677669-e08b4cac3105?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1515372039744-b8f02a3ae446?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1496747611176-843222e1e57c?auto=format&fit=crop&q=80&w=800",
	},
	"summer": {
		"https://images.unsplash.com/photo-1572804013309-59a88b7e92f1?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1495385794356-15371f348c31?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1490481651871-ab68de25d43d?auto=format&fit=crop&q=80&w=800",
	},
	"formal": {
		"https://images.unsplash.com/photo-1539008835657-9e8e9680c956?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1550639525-c97d455acf70?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1512436991641-6745cdb1723d?auto=format&fit=crop&q=80&w=800",
	},
	"wedding": {
		"https://images.unsplash.com/photo-1519657337289-077653f724ed?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1594552072238-b8a33785b261?auto=format&fit=crop&q=80&w=800",
		"https://images.unsplash.com/photo-1465495976277-4387d4b0b4c6?auto=format&fit=crop&q=80&w=800",
	},
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func demoImage(category string, index int) string {
	pool, ok := demoPhotoPool[strings.ToLower(category)]
	if !ok {
		pool = demoPhotoPool["casual"]
	}
	return pool[index%len(pool)]
}

// SeedDemoCatalog fills the product store with a generated catalog so
// the storefront stays browsable without a database.
func SeedDemoCatalog(products *MemoryProductStore) {
	faker := gofakeit.New(0)

	for _, category := range models.Categories {
		label := titleCase(category)
		for i := 1; i <= demoProductsPerCategory; i++ {
			product := models.Product{
				Name:        fmt.Sprintf("%s Premium Dress #%d", label, i),
				Description: fmt.Sprintf("Beautiful %s dress from our curated selection. High quality fabric and elegant design.", label),
				Price:       float64(faker.Number(800, 4500)),
				Category:    category,
				Images:      []string{demoImage(category, i)},
				Sizes:       []string{"S", "M", "L", "XL", "XXL"},
				Colors:      []string{faker.SafeColor(), faker.SafeColor()},

				CountInStock: faker.Number(5, 54),
				Rating:       math.Round(faker.Float64Range(3, 5)*10) / 10,
				NumReviews:   faker.Number(5, 104),
			}
			if err := products.Create(&product); err != nil {
				log.Printf("⚠️ Demo seed skipped %q: %v", product.Name, err)
			}
		}
	}

	log.Printf("✅ Demo catalog seeded: %d products", len(models.Categories)*demoProductsPerCategory)
}

// SeedDemoAccounts registers the fixed demo logins advertised on the
// demo storefront.
func SeedDemoAccounts(users *MemoryUserStore) {
	accounts := []struct {
		id, name, email, password, role string
	}{
		{"demo-admin-001", "Admin User", "admin@demo.com", "admin123", models.RoleAdmin},
		{"demo-user-001", "Demo Shopper", "user@demo.com", "demo1234", models.RoleUser},
	}

	for _, a := range accounts {
		var password models.Password
		if err := password.Set(a.password); err != nil {
			log.Printf("⚠️ Demo account %s skipped: %v", a.email, err)
			continue
		}
		user := models.User{
			ID:           a.id,
			Name:         a.name,
			Email:        a.email,
			PasswordHash: password.Hash,
			Role:         a.role,
		}
		if err := users.Create(&user); err != nil {
			log.Printf("⚠️ Demo account %s skipped: %v", a.email, err)
		}
	}
}
