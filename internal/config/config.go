package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all runtime settings, populated from the environment.
type Config struct {
	Port          int    `envconfig:"PORT" default:"8080"`
	AllowedOrigin string `envconfig:"ALLOWED_ORIGIN" default:"http://localhost:3000"`

	// PassThreshold is the minimum mark (inclusive) counted as passing.
	PassThreshold int `envconfig:"PASS_THRESHOLD" default:"40"`
	// MaxUploadBytes caps uploaded file size. Default 16MB.
	MaxUploadBytes int64 `envconfig:"MAX_UPLOAD_BYTES" default:"16777216"`

	// DBDriver selects "sqlite" (default) or "postgres".
	DBDriver   string `envconfig:"DB_DRIVER" default:"sqlite"`
	DBPath     string `envconfig:"DB_PATH" default:"marksheet.db"`
	DBHost     string `envconfig:"DB_HOST" default:"localhost"`
	DBUser     string `envconfig:"DB_USER"`
	DBPassword string `envconfig:"DB_PASSWORD"`
	DBName     string `envconfig:"DB_NAME"`
	DBPort     string `envconfig:"DB_PORT" default:"5432"`
}

// Load reads .env if present, then populates Config from the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return &cfg, nil
}

// PostgresDSN assembles the connection string for the postgres driver.
func (c *Config) PostgresDSN() string {
	return "host=" + c.DBHost + " user=" + c.DBUser + " password=" + c.DBPassword +
		" dbname=" + c.DBName + " port=" + c.DBPort + " sslmode=disable"
}
