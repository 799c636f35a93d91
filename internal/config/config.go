package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Store    StoreConfig
	Nav      NavConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// StoreConfig holds presentation settings for the storefront.
type StoreConfig struct {
	Name           string
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// NavConfig tunes the navigation core.
type NavConfig struct {
	// SettleMS is the replace-current retry delay in milliseconds.
	SettleMS int `mapstructure:"settle_ms"`
}

// Load reads configuration from file and env. Env var overrides use prefix SHOPFRONT_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("database.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "shopfront", "shopfront.db"))
	v.SetDefault("store.name", "Shopfront")
	v.SetDefault("store.currency_symbol", "$")
	v.SetDefault("nav.settle_ms", 350)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("SHOPFRONT_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "shopfront"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("SHOPFRONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
