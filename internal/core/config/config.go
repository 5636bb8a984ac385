package config

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/spf13/viper"
)

// AppConfig holds the configuration for the application.
// Tags used:
// - mapstructure: used by viper to unmarshal
// - default: default value to set if missing
// - required: if "true", error if missing
type AppConfig struct {
	// Environment specifies the runtime environment (e.g., development, production).
	Environment string `mapstructure:"APP_ENV" default:"development"`
	// LogLevel defines the logging verbosity (e.g., debug, info, error).
	LogLevel string `mapstructure:"LOG_LEVEL" default:"info"`
	// ServerPort is the port where the server will listen.
	ServerPort int `mapstructure:"SERVER_PORT" default:"8080" required:"true"`

	// Redis holds the optional Redis connection used for weight overrides and quote caching.
	Redis RedisConfig `mapstructure:",squash"`

	// Shipping holds pricing policy settings.
	Shipping ShippingConfig `mapstructure:",squash"`

	// Catalog holds the optional storefront catalog used as a weight source.
	Catalog CatalogConfig `mapstructure:",squash"`
}

// RedisConfig holds the Redis connection string.
type RedisConfig struct {
	// URL has the form redis://[:password@]host[:port][/database]. Empty disables Redis.
	URL string `mapstructure:"REDIS_URL"`
}

// Enabled reports whether a Redis URL was configured.
func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

// ShippingConfig holds the settings of the rate engine.
type ShippingConfig struct {
	// FreeExpress waives the express tier too when the free-shipping threshold is met.
	FreeExpress bool `mapstructure:"SHIPPING_FREE_EXPRESS" default:"false"`
	// QuoteCacheTTL is the lifetime of cached quotes in seconds. 0 disables the cache.
	QuoteCacheTTL int `mapstructure:"SHIPPING_QUOTE_CACHE_TTL" default:"300"`
	// RatesFile optionally points to a YAML file overriding the built-in rate table.
	RatesFile string `mapstructure:"SHIPPING_RATES_FILE"`
}

// CatalogConfig holds the storefront catalog API settings.
type CatalogConfig struct {
	// URL is the base URL of the storefront. Empty disables the catalog source.
	URL string `mapstructure:"CATALOG_URL"`
	// TimeoutSeconds bounds every catalog request.
	TimeoutSeconds int `mapstructure:"CATALOG_TIMEOUT_SECONDS" default:"5"`
}

// Load loads configuration from .env files and environment variables.
func Load(path string) (*AppConfig, error) {
	v := viper.New()

	v.AutomaticEnv()

	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config AppConfig

	processTags(v, &config)

	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("unable to decode into struct: %w", err)
	}

	if err := validateRequired(&config); err != nil {
		return nil, err
	}

	if config.Shipping.QuoteCacheTTL < 0 {
		return nil, fmt.Errorf("invalid configuration: SHIPPING_QUOTE_CACHE_TTL must not be negative")
	}

	return &config, nil
}

// processTags binds every tagged field to its env var and registers its default.
func processTags(v *viper.Viper, config interface{}) {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			processTags(v, val.Field(i).Addr().Interface())
			continue
		}

		key := field.Tag.Get("mapstructure")
		if key == "" {
			continue
		}

		_ = v.BindEnv(key)

		if defaultValue := field.Tag.Get("default"); defaultValue != "" {
			v.SetDefault(key, defaultValue)
		}
	}
}

// validateRequired checks if fields marked as required have non-zero values.
func validateRequired(config interface{}) error {
	val := reflect.ValueOf(config)
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}

	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)

		if field.Type.Kind() == reflect.Struct {
			if err := validateRequired(val.Field(i).Addr().Interface()); err != nil {
				return err
			}
			continue
		}

		if field.Tag.Get("required") == "true" && val.Field(i).IsZero() {
			return fmt.Errorf("missing required configuration: %s", field.Tag.Get("mapstructure"))
		}
	}
	return nil
}
