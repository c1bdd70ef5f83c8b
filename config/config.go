package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"restaurant-pos/store"

	"github.com/glebarez/sqlite"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	StorageSQLite = "sqlite"
	StorageMemory = "memory"
)

// Config holds everything the till reads from the environment.
type Config struct {
	Port      string
	AppEnv    string
	GinMode   string
	DBPath    string
	Storage   string
	JWTSecret []byte
	TokenTTL  time.Duration
	Seed      bool
}

// IsProduction reports whether APP_ENV selects production behaviour.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// Load reads an optional .env file, then the process environment.
func Load() (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getEnv("PORT", "8080"),
		AppEnv:    getEnv("APP_ENV", "development"),
		GinMode:   os.Getenv("GIN_MODE"),
		DBPath:    getEnv("DB_PATH", "pos.db"),
		Storage:   getEnv("STORAGE", StorageSQLite),
		JWTSecret: []byte(getEnv("JWT_SECRET", "restaurant_pos_dev_secret")),
	}

	ttl, err := time.ParseDuration(getEnv("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("TOKEN_TTL must be positive, got %s", ttl)
	}
	cfg.TokenTTL = ttl

	seed, err := strconv.ParseBool(getEnv("SEED", "true"))
	if err != nil {
		return nil, fmt.Errorf("SEED: %w", err)
	}
	cfg.Seed = seed

	switch cfg.Storage {
	case StorageSQLite, StorageMemory:
	default:
		return nil, fmt.Errorf("STORAGE must be %q or %q, got %q", StorageSQLite, StorageMemory, cfg.Storage)
	}

	if cfg.IsProduction() && os.Getenv("JWT_SECRET") == "" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}
	return cfg, nil
}

// OpenDB opens the sqlite database at path and migrates every table.
// Use ":memory:" for a throwaway database.
func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if path == ":memory:" {
		// each pooled connection would otherwise get its own empty database
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	if err := db.AutoMigrate(store.Models()...); err != nil {
		return nil, fmt.Errorf("migrate database: %w", err)
	}
	return db, nil
}
