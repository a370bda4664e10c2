package config

import (
	"os"

	"restaurant-api/logger"
	"restaurant-api/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// JWTSecret used to sign tokens — read from env or fallback
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_super_secret_2024"))

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Connect opens a database and migrates all models
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(
		&models.User{},
		&models.MenuItem{},
		&models.Reservation{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		return nil, err
	}
	return db, nil
}

// InitDB connects the process-wide database handle. Called once from main
// before any route is served.
func InitDB() {
	db, err := Connect(getEnv("DB_PATH", "restaurant.db"))
	if err != nil {
		logger.Get().Fatalw("failed to connect database", "error", err)
	}
	DB = db
	logger.Get().Infow("database connected and migrated")
}
