// Package localstore provides single-key persistent stores backing the
// cart: a plain file per key, a SQLite kv table, and an in-memory store for
// tests and for running with persistence disabled.
package localstore

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// File persists one value in one file. An absent file means the key was
// never set.
type File struct {
	path string
}

// NewFile creates a file store rooted at dir for the given key. The
// directory is created on first use.
func NewFile(dir, key string) (*File, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create store dir: %w", err)
	}
	return &File{path: filepath.Join(dir, key+".json")}, nil
}

func (f *File) Read() (string, bool, error) {
	b, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read %s: %w", f.path, err)
	}
	return string(b), true, nil
}

func (f *File) Write(value string) error {
	if err := os.WriteFile(f.path, []byte(value), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", f.path, err)
	}
	return nil
}
