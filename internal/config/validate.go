package config

import (
	"fmt"
	"net/url"
	"path/filepath"
	"time"
)

// Validate checks a normalized config and reports every problem found.
func Validate(cfg *Config) error {
	collector := &issueCollector{}
	if cfg.Version != 1 {
		collector.add("version", fmt.Sprintf("unsupported version %d", cfg.Version))
	}
	validateEndpoint(cfg.Endpoint, collector)
	validateExport(cfg.Export, collector)
	validateUI(cfg.UI, collector)
	return collector.result()
}

func validateEndpoint(endpoint EndpointConfig, collector *issueCollector) {
	parsed, err := url.Parse(endpoint.BaseURL)
	switch {
	case err != nil:
		collector.add("endpoint.base_url", fmt.Sprintf("invalid url: %v", err))
	case parsed.Scheme != "http" && parsed.Scheme != "https":
		collector.add("endpoint.base_url", fmt.Sprintf("scheme must be http or https, got %q", parsed.Scheme))
	case parsed.Host == "":
		collector.add("endpoint.base_url", "host is required")
	case parsed.RawQuery != "" || parsed.Fragment != "":
		collector.add("endpoint.base_url", "must not include a query or fragment")
	}
	if endpoint.UploadPath == "" || endpoint.UploadPath[0] != '/' {
		collector.add("endpoint.upload_path", "must start with /")
	}
	timeout, err := time.ParseDuration(endpoint.Timeout)
	if err != nil {
		collector.add("endpoint.timeout", fmt.Sprintf("invalid duration %q", endpoint.Timeout))
	} else if timeout < 0 {
		collector.add("endpoint.timeout", "must not be negative")
	}
}

func validateExport(export ExportConfig, collector *issueCollector) {
	if export.Filename != filepath.Base(export.Filename) || export.Filename == "." || export.Filename == ".." {
		collector.add("export.filename", "must be a file name without directories")
	}
}

func validateUI(ui UIConfig, collector *issueCollector) {
	switch ui.Mode {
	case "auto", "live", "plain":
	default:
		collector.add("ui.mode", fmt.Sprintf("invalid mode %q (expected auto|live|plain)", ui.Mode))
	}
}
