package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application
// Values come from the environment, optionally seeded by a .env file in the working directory
type Config struct {
	Server   ServerConfig
	Admin    AdminConfig
	Catalog  CatalogConfig
	LogLevel string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// Addr returns the listen address (host:port).
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// AdminConfig configures the listener serving /health and /metrics.
type AdminConfig struct {
	Enabled bool
	Port    string
}

// CatalogConfig locates the data files and shapes the public URL space.
// ProductsFile and CategoriesFile are independent on purpose.
type CatalogConfig struct {
	ProductsFile   string
	CategoriesFile string
	APIPrefix      string
	ImageDir       string
}

var defaults = map[string]any{
	"PORT":             "3024",
	"HOST":             "0.0.0.0",
	"READ_TIMEOUT":     15,
	"WRITE_TIMEOUT":    15,
	"SHUTDOWN_TIMEOUT": 30,
	"ADMIN_ENABLED":    true,
	"ADMIN_PORT":       "9090",
	"DB_FILE":          "db.json",
	"CATEGORY_FILE":    "category.json",
	"API_PREFIX":       "/api/product",
	"IMAGE_DIR":        "img",
	"LOG_LEVEL":        "info",
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:            v.GetString("PORT"),
			Host:            v.GetString("HOST"),
			ReadTimeout:     v.GetInt("READ_TIMEOUT"),
			WriteTimeout:    v.GetInt("WRITE_TIMEOUT"),
			ShutdownTimeout: v.GetInt("SHUTDOWN_TIMEOUT"),
		},
		Admin: AdminConfig{
			Enabled: v.GetBool("ADMIN_ENABLED"),
			Port:    v.GetString("ADMIN_PORT"),
		},
		Catalog: CatalogConfig{
			ProductsFile:   v.GetString("DB_FILE"),
			CategoriesFile: v.GetString("CATEGORY_FILE"),
			APIPrefix:      v.GetString("API_PREFIX"),
			ImageDir:       v.GetString("IMAGE_DIR"),
		},
		LogLevel: v.GetString("LOG_LEVEL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Admin.Enabled && c.Admin.Port == "" {
		return fmt.Errorf("ADMIN_PORT is required when the admin server is enabled")
	}

	if c.Catalog.ProductsFile == "" {
		return fmt.Errorf("DB_FILE is required")
	}

	if c.Catalog.CategoriesFile == "" {
		return fmt.Errorf("CATEGORY_FILE is required")
	}

	if c.Catalog.ImageDir == "" {
		return fmt.Errorf("IMAGE_DIR is required")
	}

	prefix := c.Catalog.APIPrefix
	if !strings.HasPrefix(prefix, "/") || len(prefix) < 2 || strings.HasSuffix(prefix, "/") {
		return fmt.Errorf("invalid API prefix: %q (must start with / and not end with /)", prefix)
	}

	if c.Server.ReadTimeout < 0 || c.Server.WriteTimeout < 0 || c.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("timeouts must not be negative")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}
