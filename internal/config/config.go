package config

import (
	"fmt"
	"log"
	"sync"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Storage backends for the wishlist key-value store.
const (
	BackendFile     = "file"
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

type Config struct {
	CatalogBaseURL string `env:"BF_CATALOG_BASE_URL" envDefault:"https://openlibrary.org"`
	CoversBaseURL  string `env:"BF_COVERS_BASE_URL" envDefault:"https://covers.openlibrary.org/b"`
	UserAgent      string `env:"BF_USER_AGENT" envDefault:"bookfinder/1.0"`
	SearchLimit    int    `env:"BF_SEARCH_LIMIT" envDefault:"20"`
	CatalogRPS     int    `env:"BF_CATALOG_RPS" envDefault:"2"`
	DebounceMS     int    `env:"BF_DEBOUNCE_MS" envDefault:"500"`

	StorageBackend string `env:"BF_STORAGE_BACKEND" envDefault:"file"`
	StateDir       string `env:"BF_STATE_DIR" envDefault:"data"`
	SQLitePath     string `env:"BF_SQLITE_PATH" envDefault:"data/bookfinder.db"`
	PostgresDSN    string `env:"BF_POSTGRES_DSN"`

	LogLevel string `env:"BF_LOG_LEVEL" envDefault:"info"`
}

func (c *Config) Validate() error {
	if c.CatalogBaseURL == "" {
		return fmt.Errorf("BF_CATALOG_BASE_URL cannot be empty")
	}
	if c.SearchLimit < 1 {
		return fmt.Errorf("BF_SEARCH_LIMIT must be at least 1")
	}
	if c.CatalogRPS < 1 {
		return fmt.Errorf("BF_CATALOG_RPS must be at least 1")
	}
	if c.DebounceMS < 0 {
		return fmt.Errorf("BF_DEBOUNCE_MS cannot be negative")
	}

	switch c.StorageBackend {
	case BackendFile:
		if c.StateDir == "" {
			return fmt.Errorf("BF_STATE_DIR is required when BF_STORAGE_BACKEND is file")
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("BF_SQLITE_PATH is required when BF_STORAGE_BACKEND is sqlite")
		}
	case BackendPostgres:
		if c.PostgresDSN == "" {
			return fmt.Errorf("BF_POSTGRES_DSN is required when BF_STORAGE_BACKEND is postgres")
		}
	default:
		return fmt.Errorf("unknown BF_STORAGE_BACKEND: %s", c.StorageBackend)
	}

	return nil
}

// Load parses and validates the environment. Tests call this directly
// after setting variables.
func Load() (*Config, error) {
	_ = godotenv.Load()
	c := &Config{}
	if err := env.Parse(c); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

var (
	cfg  *Config
	once sync.Once
)

// GetConfig loads the process-wide config exactly once and exits on a
// broken environment.
func GetConfig() *Config {
	once.Do(func() {
		c, err := Load()
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		cfg = c
	})
	return cfg
}
