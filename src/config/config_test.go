package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rentroll/src/config"
)

const settingsPath = "../../settings"

func TestLoadConfig(t *testing.T) {
	t.Run("base settings", func(t *testing.T) {
		cfg, err := config.LoadConfig(settingsPath, "")
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.Service.Port)
		assert.Equal(t, config.CSV, cfg.DataSource.Driver)
		assert.Equal(t, 5*time.Minute, cfg.DataSource.RedisCache.TTL)
		assert.Equal(t, "us-east-1", cfg.AWS.Region)
		assert.NotEmpty(t, cfg.Service.CorsOrigins)
	})

	t.Run("environment file is merged on top", func(t *testing.T) {
		cfg, err := config.LoadConfig(settingsPath, "TESTING")
		require.NoError(t, err)
		assert.Equal(t, "0", cfg.Service.Port)
		assert.Equal(t, "warn", cfg.Service.LogLevel)
		assert.Equal(t, "./testdata/rent_roll.csv", cfg.DataSource.CSV.Path)
		assert.Equal(t, "5432", cfg.Databases.SQL.Port)
	})

	t.Run("environment variables override files", func(t *testing.T) {
		t.Setenv("DATASOURCE_CSV_PATH", "/data/rent_roll.csv")
		t.Setenv("SERVICE_PORT", "9090")
		cfg, err := config.LoadConfig(settingsPath, "TESTING")
		require.NoError(t, err)
		assert.Equal(t, "/data/rent_roll.csv", cfg.DataSource.CSV.Path)
		assert.Equal(t, "9090", cfg.Service.Port)
	})

	t.Run("unknown environment file", func(t *testing.T) {
		_, err := config.LoadConfig(settingsPath, "MISSING")
		assert.Error(t, err)
	})
}
