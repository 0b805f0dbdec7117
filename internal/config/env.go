package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Environment variables that override config file values.
const (
	EnvBaseURL    = "QUIZSHEET_BASE_URL"
	EnvUploadPath = "QUIZSHEET_UPLOAD_PATH"
	EnvTimeout    = "QUIZSHEET_TIMEOUT"
	EnvExportDir  = "QUIZSHEET_EXPORT_DIR"
)

// LookupFunc resolves an environment variable.
type LookupFunc func(key string) (string, bool)

// LoadDotEnv loads dir/.env into the process environment without overriding
// variables that are already set. A missing file is not an error.
func LoadDotEnv(dir string) error {
	path := filepath.Join(dir, ".env")
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// ApplyEnv overrides config values with non-empty environment variables.
func ApplyEnv(cfg *Config, lookup LookupFunc) {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if value, ok := lookup(EnvBaseURL); ok && value != "" {
		cfg.Endpoint.BaseURL = value
	}
	if value, ok := lookup(EnvUploadPath); ok && value != "" {
		cfg.Endpoint.UploadPath = value
	}
	if value, ok := lookup(EnvTimeout); ok && value != "" {
		cfg.Endpoint.Timeout = value
	}
	if value, ok := lookup(EnvExportDir); ok && value != "" {
		cfg.Export.Dir = value
	}
}
