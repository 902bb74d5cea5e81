package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port        string `yaml:"port"`
	Environment string `yaml:"environment"`
	Storage     string `yaml:"storage"` // "postgres" or "memory"
	DatabaseURL string `yaml:"database_url"`
	TablePrefix string `yaml:"table_prefix"`
	CORSOrigins string `yaml:"cors_origins"`
	StaticDir   string `yaml:"static_dir"` // optional frontend directory
	Debug       bool   `yaml:"debug"`
}

// Load builds the configuration from an optional YAML file (CONFIG_FILE,
// default config.yaml) with environment variables taking precedence.
func Load() (*Config, error) {
	cfg := &Config{}

	path := getEnv("CONFIG_FILE", "config.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	cfg.Port = getEnv("PORT", defaultStr(cfg.Port, "8080"))
	cfg.Environment = getEnv("ENVIRONMENT", defaultStr(cfg.Environment, "dev"))
	cfg.Storage = getEnv("STORAGE", defaultStr(cfg.Storage, "postgres"))
	cfg.DatabaseURL = getEnv("DATABASE_URL", cfg.DatabaseURL)
	cfg.TablePrefix = getEnv("TABLE_PREFIX", defaultStr(cfg.TablePrefix, tablePrefix(cfg.Environment)))
	cfg.CORSOrigins = getEnv("CORS_ORIGINS", defaultStr(cfg.CORSOrigins, "http://localhost:3000"))
	cfg.StaticDir = getEnv("STATIC_DIR", cfg.StaticDir)
	cfg.Debug = getEnv("DEBUG", defaultDebug(cfg.Environment)) == "true"

	return cfg, nil
}

// defaultDebug returns the default debug setting based on environment
func defaultDebug(env string) string {
	if env == "prod" {
		return "false"
	}
	return "true"
}

// tablePrefix returns the table prefix based on environment
func tablePrefix(env string) string {
	switch env {
	case "prod":
		return "prod_"
	case "test":
		return "test_"
	default:
		return "dev_"
	}
}

func defaultStr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
