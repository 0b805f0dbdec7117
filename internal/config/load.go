package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Load reads, parses, applies environment overrides, normalizes and validates a config file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

// Resolve loads the config at path, or searches upward from the working
// directory when path is empty. When nothing is found it falls back to the
// defaults plus environment overrides and returns an empty path.
func Resolve(path string) (Config, string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		found, err := FindConfigPath("")
		if err != nil {
			if errors.Is(err, ErrConfigNotFound) {
				cfg, err := finish(Config{})
				return cfg, "", err
			}
			return Config{}, "", err
		}
		path = found
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return Config{}, "", fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := Load(abs)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, abs, nil
}

func finish(cfg Config) (Config, error) {
	ApplyEnv(&cfg, os.LookupEnv)
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
