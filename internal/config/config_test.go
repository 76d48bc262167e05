package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://openlibrary.org", cfg.CatalogBaseURL)
	assert.Equal(t, "https://covers.openlibrary.org/b", cfg.CoversBaseURL)
	assert.Equal(t, 20, cfg.SearchLimit)
	assert.Equal(t, 500, cfg.DebounceMS)
	assert.Equal(t, BackendFile, cfg.StorageBackend)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("BF_SEARCH_LIMIT", "50")
	t.Setenv("BF_STORAGE_BACKEND", "sqlite")
	t.Setenv("BF_SQLITE_PATH", "/tmp/bookfinder-test.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 50, cfg.SearchLimit)
	assert.Equal(t, BackendSQLite, cfg.StorageBackend)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{"zero search limit", func(c *Config) { c.SearchLimit = 0 }, "BF_SEARCH_LIMIT"},
		{"zero rps", func(c *Config) { c.CatalogRPS = 0 }, "BF_CATALOG_RPS"},
		{"negative debounce", func(c *Config) { c.DebounceMS = -1 }, "BF_DEBOUNCE_MS"},
		{"unknown backend", func(c *Config) { c.StorageBackend = "redis" }, "BF_STORAGE_BACKEND"},
		{"postgres without dsn", func(c *Config) { c.StorageBackend = BackendPostgres }, "BF_POSTGRES_DSN"},
		{"file without dir", func(c *Config) { c.StateDir = "" }, "BF_STATE_DIR"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg, err := Load()
			require.NoError(t, err)

			tc.mutate(cfg)
			err = cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}
