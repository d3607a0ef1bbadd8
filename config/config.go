package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port      string
	JWTKey    string
	SaltRound int

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	ModelDir string // directory holding the model artifacts
	ModelURL string // optional remote classifier base URL; overrides ModelDir

	HistoryLimit         int // default page size for history listing
	HistoryRetentionDays int // 0 disables the retention scheduler
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port:      getEnv("PORT", "3000"),
		JWTKey:    getEnv("JWT_SECRET_KEY", "defaultSecret"),
		SaltRound: getEnvInt("SALT_ROUND", 10),

		DBHost:     getEnv("DB_HOST", ""),
		DBUser:     getEnv("DB_USER", "medipulse"),
		DBPassword: getEnv("DB_PASSWORD", ""),
		DBName:     getEnv("DB_NAME", "medipulse.db"),
		DBPort:     getEnv("DB_PORT", "5432"),

		ModelDir: getEnv("MODEL_DIR", "./model"),
		ModelURL: getEnv("MODEL_URL", ""),

		HistoryLimit:         getEnvInt("HISTORY_LIMIT", 50),
		HistoryRetentionDays: getEnvInt("HISTORY_RETENTION_DAYS", 0),
	}

	// Validate critical configuration
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
	if AppConfig.DBHost == "" {
		log.Printf("Warning: DB_HOST not set. Falling back to local SQLite database %q.", AppConfig.DBName)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
