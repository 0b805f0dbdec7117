package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizsheet/internal/config"
)

func withInitInput(t *testing.T, input string) {
	t.Helper()
	original := initInput
	initInput = strings.NewReader(input)
	t.Cleanup(func() { initInput = original })
}

func TestInitCommandCreatesConfig(t *testing.T) {
	withInitInput(t, "y\nhttps://mcq.example.com\nanswers\n")
	configPath := filepath.Join(t.TempDir(), ".quizsheet", "config.yml")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote "+configPath) {
		t.Fatalf("expected output to include write, got %q", out.String())
	}
	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		t.Fatalf("load scaffolded config: %v", loadErr)
	}
	if cfg.Endpoint.BaseURL != "https://mcq.example.com" || cfg.Export.Dir != "answers" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestInitCommandUsesDefaultsOnEmptyAnswers(t *testing.T) {
	withInitInput(t, "\n\n\n")
	dir := t.TempDir()
	t.Chdir(dir)

	var out, err bytes.Buffer
	code := Run([]string{"init"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	data, readErr := os.ReadFile(config.ConfigPath(dir))
	if readErr != nil {
		t.Fatalf("read config: %v", readErr)
	}
	if !strings.Contains(string(data), config.DefaultBaseURL) {
		t.Fatalf("expected default base url in %q", string(data))
	}
}

func TestInitCommandCancelled(t *testing.T) {
	withInitInput(t, "n\n")
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Init cancelled.") {
		t.Fatalf("expected cancellation message, got %q", err.String())
	}
	if _, statErr := os.Stat(configPath); !os.IsNotExist(statErr) {
		t.Fatalf("expected no config file, got %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	withInitInput(t, "y\n\n\n")
	configPath := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(configPath, []byte("version: 1\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite warning, got %q", err.String())
	}
}

func TestInitCommandReasksInvalidURL(t *testing.T) {
	withInitInput(t, "y\nftp://nope\nhttp://mcq.local:8080\n\n")
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Invalid mcq service url") {
		t.Fatalf("expected re-prompt, got %q", out.String())
	}
	cfg, loadErr := config.Load(configPath)
	if loadErr != nil {
		t.Fatalf("load config: %v", loadErr)
	}
	if cfg.Endpoint.BaseURL != "http://mcq.local:8080" {
		t.Fatalf("unexpected base url %q", cfg.Endpoint.BaseURL)
	}
}

func TestInitCommandFailsWhenInputEnds(t *testing.T) {
	withInitInput(t, "y\nftp://nope")
	configPath := filepath.Join(t.TempDir(), "config.yml")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "missing input for MCQ service URL") {
		t.Fatalf("expected missing input error, got %q", err.String())
	}
}
