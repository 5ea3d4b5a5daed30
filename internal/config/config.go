package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage driver names accepted by the configuration.
const (
	StorageDriverJSON   = "json"
	StorageDriverSQLite = "sqlite"
)

// defaultSessionSecret is an insecure development fallback and is rejected
// outside the development environment.
const defaultSessionSecret = "super-secret-change-this"

// Config holds runtime configuration values for the API service.
type Config struct {
	AppName       string
	AppEnv        string
	AppPort       string
	StorageDriver string
	StudentsFile  string
	UsersFile     string
	SQLitePath    string
	SessionSecret string
	SessionTTL    time.Duration
	AdminUsername string
	AdminPassword string
}

// HTTPAddress returns the address the HTTP server should listen on.
func (c Config) HTTPAddress() string {
	if strings.HasPrefix(c.AppPort, ":") {
		return c.AppPort
	}

	return fmt.Sprintf(":%s", c.AppPort)
}

// Load reads configuration values from environment variables and optional .env file.
func Load() (Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix("SIMAK")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("app.name", "SIMAK API")
	v.SetDefault("app.env", "development")
	v.SetDefault("app.port", "8080")
	v.SetDefault("storage.driver", StorageDriverJSON)
	v.SetDefault("storage.students_file", "mahasiswa.json")
	v.SetDefault("storage.users_file", "users.json")
	v.SetDefault("storage.sqlite_path", "simak.db")
	v.SetDefault("session.secret", defaultSessionSecret)
	v.SetDefault("session.ttl", "12h")
	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "12345")

	ttlString := v.GetString("session.ttl")
	if ttlString == "" {
		ttlString = "12h"
	}

	ttl, err := time.ParseDuration(ttlString)
	if err != nil {
		return Config{}, fmt.Errorf("invalid session ttl: %w", err)
	}

	cfg := Config{
		AppName:       v.GetString("app.name"),
		AppEnv:        v.GetString("app.env"),
		AppPort:       v.GetString("app.port"),
		StorageDriver: strings.ToLower(v.GetString("storage.driver")),
		StudentsFile:  v.GetString("storage.students_file"),
		UsersFile:     v.GetString("storage.users_file"),
		SQLitePath:    v.GetString("storage.sqlite_path"),
		SessionSecret: v.GetString("session.secret"),
		SessionTTL:    ttl,
		AdminUsername: v.GetString("admin.username"),
		AdminPassword: v.GetString("admin.password"),
	}

	switch cfg.StorageDriver {
	case StorageDriverJSON, StorageDriverSQLite:
	default:
		return Config{}, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	if cfg.SessionSecret == "" {
		return Config{}, fmt.Errorf("session secret must not be empty")
	}

	if cfg.AppEnv != "development" && cfg.SessionSecret == defaultSessionSecret {
		return Config{}, fmt.Errorf("session secret must be overridden outside development")
	}

	return cfg, nil
}
