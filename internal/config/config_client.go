package config

import (
	"os"
	"path/filepath"
	"time"
)

// ClientConfig is the configuration container for the TUI client.
type ClientConfig struct {
	// Adapter configures the REST connection to the study-sesh server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage configures the client-local SQLite database that persists
	// UI-only state (assignment completion flags). This data never leaves
	// the machine and is independent of the server session.
	Storage ClientStorage `envPrefix:"STORAGE_"`
}

// Adapter holds the REST client settings for reaching the server.
type Adapter struct {
	// BaseURL is the root URL of the study-sesh API
	// (e.g. "http://localhost:5300").
	// Env: ADAPTER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single request to the server.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// ClientStorage holds the client-local persistence settings.
type ClientStorage struct {
	// SQLitePath is the path of the local SQLite database file.
	// Env: STORAGE_SQLITE_PATH
	SQLitePath string `env:"SQLITE_PATH"`
}

// GetClientConfig loads the TUI client configuration from environment
// variables, falling back to defaults: local server address, 15 second
// timeout, and a database file next to the executable.
func GetClientConfig() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:5300"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.SQLitePath == "" {
		execPath, _ := os.Executable()
		cfg.Storage.SQLitePath = filepath.Join(filepath.Dir(execPath), "study-sesh.db")
	}

	return cfg, cfg.validate()
}
