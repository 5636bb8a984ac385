package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"APP_ENV", "LOG_LEVEL", "SERVER_PORT", "REDIS_URL",
	"SHIPPING_FREE_EXPRESS", "SHIPPING_QUOTE_CACHE_TTL", "SHIPPING_RATES_FILE",
	"CATALOG_URL", "CATALOG_TIMEOUT_SECONDS",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		os.Unsetenv(key)
	}
	t.Cleanup(func() {
		for _, key := range configKeys {
			os.Unsetenv(key)
		}
	})
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.False(t, cfg.Redis.Enabled())
	assert.False(t, cfg.Shipping.FreeExpress)
	assert.Equal(t, 300, cfg.Shipping.QuoteCacheTTL)
	assert.Empty(t, cfg.Shipping.RatesFile)
	assert.Empty(t, cfg.Catalog.URL)
	assert.Equal(t, 5, cfg.Catalog.TimeoutSeconds)
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	clearEnv(t)
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("REDIS_URL", "redis://localhost:6379/0")
	os.Setenv("SHIPPING_FREE_EXPRESS", "true")
	os.Setenv("SHIPPING_QUOTE_CACHE_TTL", "60")
	os.Setenv("CATALOG_URL", "https://loja.example.com")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.True(t, cfg.Shipping.FreeExpress)
	assert.Equal(t, 60, cfg.Shipping.QuoteCacheTTL)
	assert.Equal(t, "https://loja.example.com", cfg.Catalog.URL)
}

// TestLoad_File verifies that values are loaded from a .env file.
func TestLoad_File(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()

	content := []byte(`
APP_ENV=staging
LOG_LEVEL=warn
SERVER_PORT=7070
SHIPPING_QUOTE_CACHE_TTL=0
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), content, 0644))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "staging", cfg.Environment)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 7070, cfg.ServerPort)
	assert.Equal(t, 0, cfg.Shipping.QuoteCacheTTL)
}

// TestLoad_ValidationFailure verifies that zeroed required fields return an error.
func TestLoad_ValidationFailure(t *testing.T) {
	clearEnv(t)
	os.Setenv("SERVER_PORT", "0")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "missing required configuration: SERVER_PORT")
}

func TestLoad_NegativeCacheTTL(t *testing.T) {
	clearEnv(t)
	os.Setenv("SHIPPING_QUOTE_CACHE_TTL", "-5")

	cfg, err := Load(t.TempDir())
	require.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadRates(t *testing.T) {
	file := filepath.Join(t.TempDir(), "rates.yaml")
	content := []byte(`
regions:
  southeast:
    base_fee: 18.5
    per_kg_fee: 1.1
    free_shipping_threshold: 700
    min_days: 1
    max_days: 4
  north:
    base_fee: 40
    per_kg_fee: 3
    free_shipping_threshold: 1500
    min_days: 8
    max_days: 18
`)
	require.NoError(t, os.WriteFile(file, content, 0644))

	rates, err := LoadRates(file)
	require.NoError(t, err)
	require.Len(t, rates.Regions, 2)

	se := rates.Regions["southeast"]
	assert.Equal(t, 18.5, se.BaseFee)
	assert.Equal(t, 1.1, se.PerKgFee)
	assert.Equal(t, 700.0, se.FreeShippingThreshold)
	assert.Equal(t, 1, se.MinDays)
	assert.Equal(t, 4, se.MaxDays)
}

func TestLoadRates_Errors(t *testing.T) {
	t.Run("MissingFile", func(t *testing.T) {
		_, err := LoadRates(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("NoRegions", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "rates.yaml")
		require.NoError(t, os.WriteFile(file, []byte("other: 1\n"), 0644))

		_, err := LoadRates(file)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "defines no regions")
	})
}
