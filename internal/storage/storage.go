package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// ErrNotFound is returned when a stored blob does not exist under the
// store's directory.
var ErrNotFound = errors.New("blob not found")

// Store persists opaque binary blobs (item images) on disk under
// generated unique names. Names are opaque to callers; retrieval is by
// the exact name returned from Save.
type Store struct {
	dir string
}

// NewStore creates the upload directory if needed and returns a Store
// rooted there.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload directory: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Save writes data under a fresh uuid-based filename with the given
// extension and returns the filename.
func (s *Store) Save(data []byte, ext string) (string, error) {
	ext = strings.TrimPrefix(ext, ".")
	name := fmt.Sprintf("%s.%s", uuid.NewString(), ext)
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", fmt.Errorf("writing blob: %w", err)
	}
	return name, nil
}

// Path resolves a stored name to its on-disk path. Unknown names and
// names that escape the store directory yield ErrNotFound.
func (s *Store) Path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) {
		return "", ErrNotFound
	}
	path := filepath.Join(s.dir, name)
	if _, err := os.Stat(path); err != nil {
		return "", ErrNotFound
	}
	return path, nil
}

// Remove deletes a stored blob. Missing blobs are not an error.
func (s *Store) Remove(name string) error {
	path, err := s.Path(name)
	if err != nil {
		return nil
	}
	return os.Remove(path)
}
