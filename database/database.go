package database

import (
	"fmt"
	"log"

	"medipulse/config"
	"medipulse/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db *gorm.DB
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes a connection to PostgreSQL, or to a local SQLite
// file when DB_HOST is not configured.
func ConnectDb() {
	var (
		db  *gorm.DB
		err error
	)

	if config.AppConfig.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	} else {
		db, err = gorm.Open(sqlite.Open(config.AppConfig.DBName), &gorm.Config{})
	}
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}

	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	// Run database migrations
	runMigrations(db)

	// Save database instance globally
	Database = DbInstance{Db: db}

	seedDefaultUsers(db)
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	err := db.AutoMigrate(
		&models.User{},
		&models.HistoryRecord{},
	)
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}

// seedDefaultUsers creates the default accounts when the users table is empty.
func seedDefaultUsers(db *gorm.DB) {
	var count int64
	if err := db.Model(&models.User{}).Count(&count).Error; err != nil {
		log.Printf("Error counting users for seeding: %v", err)
		return
	}
	if count > 0 {
		return
	}

	defaults := map[string]string{
		"admin":  "admin123",
		"doctor": "doctor123",
	}

	for username, password := range defaults {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
		if err != nil {
			log.Printf("Error hashing seed password for %s: %v", username, err)
			continue
		}
		user := models.User{Username: username, Password: string(hashed)}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("Error seeding user %s: %v", username, err)
			continue
		}
		log.Printf("Seeded default account: %s", username)
	}
}
