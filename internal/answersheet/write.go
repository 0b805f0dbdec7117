package answersheet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Write saves the sheet as dir/name through a temp file and rename, so the
// destination never holds a partial sheet. An empty name uses DefaultFilename.
func Write(dir, name string, sheet Sheet) (string, error) {
	if dir == "" {
		dir = "."
	}
	if name == "" {
		name = DefaultFilename
	}
	if filepath.Base(name) != name {
		return "", fmt.Errorf("export filename %q must not contain a directory", name)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}
	target := filepath.Join(dir, name)
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return "", fmt.Errorf("export path %q is a directory", target)
	}

	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return "", fmt.Errorf("create temp sheet: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func(cause error) error {
		_ = tmp.Close()
		_ = os.Remove(tmpPath)
		return cause
	}
	if _, err := tmp.Write(sheet.Bytes()); err != nil {
		return "", cleanup(fmt.Errorf("write %s: %w", name, err))
	}
	if err := tmp.Chmod(0o644); err != nil {
		return "", cleanup(fmt.Errorf("chmod %s: %w", name, err))
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return "", fmt.Errorf("close %s: %w", name, err)
	}
	if err := os.Rename(tmpPath, target); err != nil {
		removeErr := os.Remove(tmpPath)
		return "", errors.Join(fmt.Errorf("save %s: %w", name, err), ignoreNotExist(removeErr))
	}
	return target, nil
}

func ignoreNotExist(err error) error {
	if err == nil || errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}
