package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

type Config struct {
	Server  ServerConfig
	Storage StorageConfig
	App     AppConfig
}

type ServerConfig struct {
	Port string
}

type StorageConfig struct {
	DataDir string
}

type AppConfig struct {
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Storage: StorageConfig{
			DataDir: getEnv("DATA_DIR", "data"),
		},
		App: AppConfig{
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Storage.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	return nil
}

// QuotesDir returns the directory holding individual quote documents.
func (c *Config) QuotesDir() string {
	return filepath.Join(c.Storage.DataDir, "quotes")
}

// ProductsFile returns the path of the product catalog document.
func (c *Config) ProductsFile() string {
	return filepath.Join(c.Storage.DataDir, "products.json")
}

// CustomersFile returns the path of the customer list document.
func (c *Config) CustomersFile() string {
	return filepath.Join(c.Storage.DataDir, "customers.json")
}

// SalesTaxFile returns the path of the sales tax rate document.
func (c *Config) SalesTaxFile() string {
	return filepath.Join(c.Storage.DataDir, "salestax.txt")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
