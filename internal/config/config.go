package config

import (
	"fmt"
	"os"
)

// Config holds all application configuration.
type Config struct {
	Database DatabaseConfig
	HTTP     HTTPConfig
	Auth     AuthConfig
	NatsURL  string
}

// DatabaseConfig contains Postgres connection settings.
type DatabaseConfig struct {
	User     string
	Password string
	Host     string
	Port     string
	Name     string
}

// HTTPConfig contains HTTP server settings.
type HTTPConfig struct {
	Port string
}

// AuthConfig contains token signing settings.
type AuthConfig struct {
	JWTSecret string
}

// Load reads configuration from environment variables with sensible
// defaults. The JWT secret has no default and must be set.
func Load() (*Config, error) {
	cfg := &Config{
		Database: DatabaseConfig{
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			Name:     getEnv("DB_NAME", "movies"),
		},
		HTTP: HTTPConfig{
			Port: getEnv("APP_PORT", "3000"),
		},
		Auth: AuthConfig{
			JWTSecret: getEnv("JWT_SECRET", ""),
		},
		NatsURL: getEnv("NATS_URL", ""),
	}

	if cfg.Auth.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is not set")
	}

	return cfg, nil
}

// URL returns the Postgres connection string for the pgx stdlib driver.
func (d DatabaseConfig) URL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		d.User, d.Password, d.Host, d.Port, d.Name,
	)
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
