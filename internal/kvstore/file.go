package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// FileStore implements Store on the local filesystem, one file per key
// under a base directory. Writes go through a temp file and rename so a
// crash mid-write never leaves a half-written value behind.
type FileStore struct {
	basePath string
	mu       sync.Mutex
}

// NewFileStore creates a file-backed store rooted at basePath.
func NewFileStore(basePath string) (*FileStore, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create store directory %s: %w", basePath, err)
	}
	return &FileStore{basePath: basePath}, nil
}

// Get retrieves the raw value for a key.
func (s *FileStore) Get(key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	content, err := os.ReadFile(s.keyToPath(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read key %s: %w", key, err)
	}
	return content, true, nil
}

// Set stores the raw value for a key.
func (s *FileStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fullPath := s.keyToPath(key)
	tmpPath := fullPath + ".tmp"
	if err := os.WriteFile(tmpPath, value, 0644); err != nil {
		return fmt.Errorf("failed to write key %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, fullPath); err != nil {
		return fmt.Errorf("failed to commit key %s: %w", key, err)
	}
	return nil
}

// Delete removes a key. Absent keys are a no-op.
func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.keyToPath(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete key %s: %w", key, err)
	}
	return nil
}

// keyToPath maps a namespace key to a file path, stripping anything
// that could escape the base directory.
func (s *FileStore) keyToPath(key string) string {
	clean := strings.ReplaceAll(key, string(os.PathSeparator), "_")
	clean = strings.ReplaceAll(clean, "..", "_")
	return filepath.Join(s.basePath, clean+".json")
}
