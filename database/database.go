// database.go - Handles database connection and setup

package database

import (
	"errors"
	"fmt"
	"strings"

	"go-food-shop/models" // User, CartItem and Order models

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/driver/sqlite"      // SQLite driver for GORM
	"gorm.io/gorm"               // GORM ORM
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB // Shared handle; gorm.DB wraps the database/sql connection pool

// Connect opens the SQLite file, sizes the pool and creates missing tables.
func Connect(dbPath string, maxOpenConns int) error {
	db, err := gorm.Open(sqlite.Open(dsn(dbPath)), &gorm.Config{
		TranslateError: true, // Surface UNIQUE violations as gorm.ErrDuplicatedKey
		Logger:         gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return fmt.Errorf("open %s: %w", dbPath, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	if maxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(maxOpenConns)
		sqlDB.SetMaxIdleConns(maxOpenConns)
	}

	// Auto-migrate is create-if-not-exists, safe to run on every start
	if err := db.AutoMigrate(&models.User{}, &models.CartItem{}, &models.Order{}); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	DB = db
	return nil
}

// Close releases every pooled connection.
func Close() error {
	if DB == nil {
		return nil
	}
	sqlDB, err := DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// SeedAdmin makes sure the admin account exists. It reports whether a new
// row was inserted; an existing account (and its password) is left alone.
func SeedAdmin(db *gorm.DB, username, password string) (bool, error) {
	var existing models.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}
	admin := models.User{
		Username: username,
		Password: string(hash),
		Role:     models.RoleAdmin,
	}
	if err := db.Create(&admin).Error; err != nil {
		return false, err
	}
	return true, nil
}

func dsn(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on&_busy_timeout=5000"
}
