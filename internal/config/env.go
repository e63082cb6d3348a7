package config

import (
	"os"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// real environment variables take precedence over it.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.SpreadsheetID = getEnv("EWEHUB_SPREADSHEET_ID", cfg.SpreadsheetID)
	cfg.UsersSheet = getEnv("EWEHUB_USERS_SHEET", cfg.UsersSheet)
	cfg.DatasetSheet = getEnv("EWEHUB_DATASET_SHEET", cfg.DatasetSheet)
	cfg.CredentialsFile = getEnv("EWEHUB_CREDENTIALS_FILE", cfg.CredentialsFile)
	cfg.AdminUsername = getEnv("EWEHUB_ADMIN_USERNAME", cfg.AdminUsername)
	cfg.AdminPassword = getEnv("EWEHUB_ADMIN_PASSWORD", cfg.AdminPassword)
	cfg.LogLevel = getEnv("EWEHUB_LOG_LEVEL", cfg.LogLevel)
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
