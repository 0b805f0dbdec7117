package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const configTemplate = `version: 1
endpoint:
  base_url: "{{base_url}}"
  upload_path: "/upload"
  timeout: "120s"
export:
  dir: "{{export_dir}}"
  filename: "my_answers.txt"
ui:
  mode: auto
  no_color: false
`

// RenderScaffold returns the starter config for the given endpoint and export dir.
func RenderScaffold(baseURL, exportDir string) string {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if strings.TrimSpace(exportDir) == "" {
		exportDir = "."
	}
	replacer := strings.NewReplacer("{{base_url}}", baseURL, "{{export_dir}}", exportDir)
	return replacer.Replace(configTemplate)
}

// Scaffold writes a starter config at path, refusing to overwrite.
func Scaffold(path, baseURL, exportDir string) error {
	if path == "" {
		return fmt.Errorf("config path is required")
	}
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			return fmt.Errorf("config path %q is a directory", path)
		}
		return fmt.Errorf("config file already exists at %q", path)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("stat config file: %w", err)
	}

	content := RenderScaffold(baseURL, exportDir)
	cfg, err := Parse([]byte(content))
	if err != nil {
		return err
	}
	Normalize(&cfg)
	if err := Validate(&cfg); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
