package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            int
	StaticDirectory string
	LogDirectory    string
	JournalPath     string

	CredentialsFile string
	DriveFolderID   string
	SheetID         string
	SheetRange      string

	MaxImages         int
	UploadConcurrency int
	RetryAttempts     int
	RetryBaseDelay    time.Duration
	CallTimeout       time.Duration
}

func Load() *Config {
	// .env is optional; deployments may set plain environment variables instead.
	_ = godotenv.Load()

	return &Config{
		Port:            getEnvAsInt("PORT", 8080),
		StaticDirectory: getEnv("STATIC_DIR", filepath.Join(".", "static")),
		LogDirectory:    getEnv("LOG_DIR", filepath.Join(".", "logs")),
		JournalPath:     getEnv("JOURNAL_PATH", filepath.Join(".", "data", "journal.db")),

		CredentialsFile: getEnv("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
		DriveFolderID:   getEnv("DRIVE_FOLDER_ID", ""),
		SheetID:         getEnv("GOOGLE_SHEET_ID", ""),
		SheetRange:      getEnv("SHEET_RANGE", "Logs!A1"),

		MaxImages:         getEnvAsInt("MAX_IMAGES", 4),
		UploadConcurrency: getEnvAsInt("UPLOAD_CONCURRENCY", 4),
		RetryAttempts:     getEnvAsInt("RETRY_ATTEMPTS", 3),
		RetryBaseDelay:    getEnvAsDuration("RETRY_BASE_MS", 500),
		CallTimeout:       getEnvAsDuration("CALL_TIMEOUT_MS", 10000),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultMillis int) time.Duration {
	return time.Duration(getEnvAsInt(key, defaultMillis)) * time.Millisecond
}
