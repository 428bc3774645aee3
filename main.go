package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/abishek204/dress-shop/routes"
	"github.com/abishek204/dress-shop/store"
)

func main() {
	log.Println("✅ Starting application...")

	// Load environment variables
	_ = godotenv.Load()

	// Init stores: Postgres when reachable, otherwise transient demo data
	stores, demoMode := initStores()

	// Gin setup
	r := gin.Default()

	// CORS settings
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve locally hosted product images
	uploadsDir := os.Getenv("UPLOADS_DIR")
	if uploadsDir == "" {
		uploadsDir = "./uploads"
	}
	r.Static("/uploads", uploadsDir)

	// Setup routes
	routes.SetupRoutes(r, stores, demoMode)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Printf("🚀 Server running on port %s...", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// initStores connects to Postgres and returns the persistent stores.
// When the database is unreachable the server does not exit: it falls
// back to in-memory stores seeded with demo data so the frontend stays
// functional.
func initStores() (routes.Stores, bool) {
	db, err := openDatabase()
	if err == nil {
		if err := store.AutoMigrate(db); err != nil {
			log.Fatalf("❌ AutoMigrate failed: %v", err)
		}
		log.Println("✅ PostgreSQL connected")
		return routes.Stores{
			Products: store.NewGormProductStore(db),
			Carts:    store.NewGormCartStore(db),
			Users:    store.NewGormUserStore(db),
		}, false
	}

	log.Printf("⚠️ Database unreachable (%v)", err)
	log.Println("⚠️ Running in DEMO MODE (no database)")

	products := store.NewMemoryProductStore()
	users := store.NewMemoryUserStore()
	store.SeedDemoCatalog(products)
	store.SeedDemoAccounts(users)

	return routes.Stores{
		Products: products,
		Carts:    store.NewMemoryCartStore(),
		Users:    users,
	}, true
}

// openDatabase sets up the GORM DB connection
func openDatabase() (*gorm.DB, error) {
	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		return gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	}

	host := os.Getenv("DB_HOST")
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	password := os.Getenv("DB_PASSWORD")
	dbname := os.Getenv("DB_NAME")

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		host, user, password, dbname, port,
	)

	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
