// Package checkpoint persists the last successfully processed release
// version, so a scheduled run can tell which feed entries are new. The
// stored format is a single trimmed version string.
package checkpoint

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Store reads and writes the checkpoint file
type Store struct {
	path string
}

// New creates a store backed by the given file path
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path
func (s *Store) Path() string {
	return s.path
}

// Read returns the stored version, or "" when no checkpoint exists yet.
// A missing file is a normal first-run condition, not an error.
func (s *Store) Read() (string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read checkpoint %s: %w", s.path, err)
	}

	return strings.TrimSpace(string(data)), nil
}

// Write records version as the new checkpoint, creating parent directories
// as needed.
func (s *Store) Write(version string) error {
	version = strings.TrimSpace(version)
	if version == "" {
		return fmt.Errorf("refusing to write an empty checkpoint")
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create checkpoint directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, []byte(version+"\n"), 0o644); err != nil {
		return fmt.Errorf("failed to write checkpoint %s: %w", s.path, err)
	}

	return nil
}
