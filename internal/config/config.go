package config

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	ServerPort      string
	LocalDBPath     string
	DatabaseType    string // "postgres" or "mysql"; empty disables the remote tier
	DatabaseURL     string
	MigrationsPath  string
	StaticFilesPath string

	SessionSecret   string
	SessionDuration time.Duration
	ParentPINHash   string // bcrypt hash; empty disables parent login

	// Weekly progress report via SES; disabled unless FromEmail is set
	AWSRegion        string
	ReportFromEmail  string
	ReportFromName   string
	ReportRecipients []string
}

// Load reads configuration from the environment (and .env, if present)
// with sensible defaults
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded configuration from .env")
	}

	return &Config{
		ServerPort:      getEnv("PORT", "8080"),
		LocalDBPath:     getEnv("DB_PATH", "./notebook.db"),
		DatabaseType:    getEnv("DATABASE_TYPE", ""),
		DatabaseURL:     getEnv("DATABASE_URL", ""),
		MigrationsPath:  getEnv("MIGRATIONS_PATH", "./migrations"),
		StaticFilesPath: getEnv("STATIC_PATH", "./static"),

		SessionSecret:   getEnv("SESSION_SECRET", ""),
		SessionDuration: 24 * time.Hour,
		ParentPINHash:   getEnv("PARENT_PIN_HASH", ""),

		AWSRegion:        getEnv("AWS_REGION", "eu-west-1"),
		ReportFromEmail:  getEnv("REPORT_FROM_EMAIL", ""),
		ReportFromName:   getEnv("REPORT_FROM_NAME", "Family Notebook"),
		ReportRecipients: splitList(getEnv("REPORT_RECIPIENTS", "")),
	}
}

// RemoteEnabled reports whether a remote database tier is configured
func (c *Config) RemoteEnabled() bool {
	return c.DatabaseType != "" && c.DatabaseURL != ""
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
