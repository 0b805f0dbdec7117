package mcq

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Generator turns an uploaded document into multiple-choice questions.
type Generator interface {
	Upload(ctx context.Context, file File) (Response, error)
}

// File is an opaque handle to a user-selected document.
type File struct {
	Name string
	Open func() (io.ReadCloser, error)
}

// IsZero reports whether no file has been selected.
func (f File) IsZero() bool {
	return f.Open == nil
}

// FileFromPath builds a handle that opens path on demand.
// The path is not checked until the file is opened.
func FileFromPath(path string) File {
	return File{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) {
			file, err := os.Open(path)
			if err != nil {
				return nil, fmt.Errorf("open %s: %w", path, err)
			}
			return file, nil
		},
	}
}

// FileFromBytes builds an in-memory handle.
func FileFromBytes(name string, data []byte) File {
	return File{
		Name: name,
		Open: func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		},
	}
}
