package database

import (
	"fmt"

	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/delishdine/restaurant-app/config"
	"github.com/delishdine/restaurant-app/models"
)

// Open connects to the configured database. The default is an in-memory
// SQLite database, so a plain start serves the demo with no external state.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "sqlite", "":
		return gorm.Open(sqlite.Open(cfg.DSN), &gorm.Config{})
	case "mysql":
		return gorm.Open(mysql.Open(cfg.DSN), &gorm.Config{})
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Driver)
	}
}

// Migrate creates or updates every table.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.MenuItem{},
		&models.ContactMessage{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
		&models.User{},
	)
}

// SeedMenu inserts the default Delish Dine card when the menu is empty, so
// identifiers start at 1 on a fresh database.
func SeedMenu(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.MenuItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	items := []models.MenuItem{
		{Name: "Chicken Alfredo Pasta", Type: models.MenuTypeMain, Price: 850, IsActive: true},
		{Name: "Caesar Salad", Type: models.MenuTypeStarter, Price: 450, IsActive: true},
		{Name: "Grilled Fish", Type: models.MenuTypeMain, Price: 950, IsActive: true},
		{Name: "Chocolate Lava Cake", Type: models.MenuTypeDessert, Price: 550, IsActive: true},
		{Name: "French Fries", Type: models.MenuTypeStarter, Price: 300, IsActive: true},
	}
	return db.Create(&items).Error
}
