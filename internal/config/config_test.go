package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"movie-catalog-service/internal/config"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	require.Error(t, err)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("DB_HOST", "localhost")
	t.Setenv("APP_PORT", "3000")
	t.Setenv("NATS_URL", "")

	cfg, err := config.Load()
	require.NoError(t, err)
	require.Equal(t, "3000", cfg.HTTP.Port)
	require.Equal(t, "localhost", cfg.Database.Host)
	require.Empty(t, cfg.NatsURL)
}

func TestDatabaseURL(t *testing.T) {
	d := config.DatabaseConfig{User: "u", Password: "p", Host: "db", Port: "5432", Name: "movies"}
	require.Equal(t, "postgres://u:p@db:5432/movies?sslmode=disable", d.URL())
}
