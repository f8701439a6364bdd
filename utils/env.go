package utils

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("ℹ️  No .env file found, continuing...")
	}
}

// GetDatabaseURL resolves the catalog connection string: config file first
// (database.url), environment second (DATABASE_URL). Empty means no
// catalog is configured; only the catalog commands care.
func GetDatabaseURL() string {
	if url := viper.GetString("database.url"); url != "" {
		return url
	}
	return os.Getenv("DATABASE_URL")
}
