package config

import (
	"strings"

	"quizsheet/internal/answersheet"
	"quizsheet/pkg/mcq/httpclient"
)

// Defaults applied by Normalize.
const (
	DefaultBaseURL = "http://localhost:5000"
	DefaultTimeout = "120s"
	DefaultUIMode  = "auto"
)

// Default returns a normalized config with no file behind it.
func Default() Config {
	cfg := Config{Version: 1}
	Normalize(&cfg)
	return cfg
}

// Normalize trims values and fills defaults.
func Normalize(cfg *Config) {
	if cfg.Version == 0 {
		cfg.Version = 1
	}
	cfg.Endpoint.BaseURL = strings.TrimRight(strings.TrimSpace(cfg.Endpoint.BaseURL), "/")
	if cfg.Endpoint.BaseURL == "" {
		cfg.Endpoint.BaseURL = DefaultBaseURL
	}
	cfg.Endpoint.UploadPath = strings.TrimSpace(cfg.Endpoint.UploadPath)
	if cfg.Endpoint.UploadPath == "" {
		cfg.Endpoint.UploadPath = httpclient.DefaultUploadPath
	} else if !strings.HasPrefix(cfg.Endpoint.UploadPath, "/") {
		cfg.Endpoint.UploadPath = "/" + cfg.Endpoint.UploadPath
	}
	cfg.Endpoint.Timeout = strings.TrimSpace(cfg.Endpoint.Timeout)
	if cfg.Endpoint.Timeout == "" {
		cfg.Endpoint.Timeout = DefaultTimeout
	}
	cfg.Export.Dir = strings.TrimSpace(cfg.Export.Dir)
	if cfg.Export.Dir == "" {
		cfg.Export.Dir = "."
	}
	cfg.Export.Filename = strings.TrimSpace(cfg.Export.Filename)
	if cfg.Export.Filename == "" {
		cfg.Export.Filename = answersheet.DefaultFilename
	}
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = DefaultUIMode
	}
}
