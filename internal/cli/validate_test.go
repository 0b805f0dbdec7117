package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizsheet/internal/config"
)

func writeTestConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := config.ConfigPath(dir)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create config dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

// clearQuizsheetEnv unsets the override variables for the duration of a test.
func clearQuizsheetEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{config.EnvBaseURL, config.EnvUploadPath, config.EnvTimeout, config.EnvExportDir} {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
}

// TestValidateCommandSuccess verifies validate command success path.
func TestValidateCommandSuccess(t *testing.T) {
	clearQuizsheetEnv(t)
	t.Chdir(t.TempDir())
	path := writeTestConfig(t, t.TempDir(), `version: 1
endpoint:
  base_url: "http://mcq.internal:5000"
export:
  dir: "./out"
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
	if err.Len() != 0 {
		t.Fatalf("expected no stderr output, got %q", err.String())
	}
	if !strings.Contains(out.String(), "Config OK") || !strings.Contains(out.String(), "http://mcq.internal:5000/upload") {
		t.Fatalf("expected success message, got %q", out.String())
	}
}

// TestValidateCommandFailure verifies validate command error handling.
func TestValidateCommandFailure(t *testing.T) {
	clearQuizsheetEnv(t)
	t.Chdir(t.TempDir())
	path := writeTestConfig(t, t.TempDir(), `version: 3
endpoint:
  base_url: "mcq.internal"
  timeout: "forever"
ui:
  mode: fancy
`)

	var out, err bytes.Buffer
	code := Run([]string{"validate", "--config", path}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	for _, field := range []string{"version", "endpoint.base_url", "endpoint.timeout", "ui.mode"} {
		if !strings.Contains(err.String(), field) {
			t.Fatalf("expected issue for %s in %q", field, err.String())
		}
	}
}

// TestValidateCommandFindsConfigUpward verifies auto-detection from a nested directory.
func TestValidateCommandFindsConfigUpward(t *testing.T) {
	clearQuizsheetEnv(t)
	root := t.TempDir()
	writeTestConfig(t, root, "version: 1\n")
	nested := filepath.Join(root, "docs", "pdfs")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Chdir(nested)

	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (stderr %q)", ExitOK, code, err.String())
	}
}

// TestValidateCommandMissingConfig verifies a missing config is reported.
func TestValidateCommandMissingConfig(t *testing.T) {
	clearQuizsheetEnv(t)
	t.Chdir(t.TempDir())

	var out, err bytes.Buffer
	code := Run([]string{"validate"}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(err.String(), "Validation failed") {
		t.Fatalf("expected failure message, got %q", err.String())
	}
}

// TestValidateCommandUnexpectedArgs verifies usage errors.
func TestValidateCommandUnexpectedArgs(t *testing.T) {
	var out, err bytes.Buffer
	code := Run([]string{"validate", "extra"}, &out, &err)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
