package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Store is the catalog port consumed by handlers and the admin CLI.
type Store interface {
	// All returns every product in catalog order.
	All() ([]Product, error)

	// GetByID returns one product or ErrProductNotFound.
	GetByID(id string) (Product, error)

	// ReplaceAll overwrites the whole collection. There are no partial
	// updates; the admin UI always posts the full list.
	ReplaceAll(products []Product) error
}

// FileStore implements Store over a flat products.json file. Reads are
// served from an in-memory snapshot invalidated by file mtime, with
// concurrent reloads collapsed through singleflight so a burst of
// requests after an admin write triggers one disk read, not N.
type FileStore struct {
	path   string
	logger zerolog.Logger

	mu       sync.RWMutex
	snapshot []Product
	loadedAt time.Time
	fileMod  time.Time

	loadGroup singleflight.Group
}

// NewFileStore creates a catalog store backed by the JSON file at path.
// If the file does not exist it is seeded with DefaultProducts.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path:   path,
		logger: log.With().Str("component", "catalog_store").Logger(),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := s.ReplaceAll(DefaultProducts()); err != nil {
			return nil, fmt.Errorf("failed to seed default catalog: %w", err)
		}
		s.logger.Info().Str("path", path).Msg("Created default products.json")
	} else if err != nil {
		return nil, fmt.Errorf("failed to stat catalog file %s: %w", path, err)
	}

	return s, nil
}

// All returns every product in catalog order.
func (s *FileStore) All() ([]Product, error) {
	if err := s.ensureFresh(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.snapshot))
	copy(out, s.snapshot)
	return out, nil
}

// GetByID returns one product or ErrProductNotFound.
func (s *FileStore) GetByID(id string) (Product, error) {
	if err := s.ensureFresh(); err != nil {
		return Product{}, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.snapshot {
		if p.ID == id {
			return p, nil
		}
	}
	return Product{}, fmt.Errorf("%w: %s", ErrProductNotFound, id)
}

// ReplaceAll overwrites the whole collection on disk and refreshes the
// snapshot. The write goes through a temp file and rename.
func (s *FileStore) ReplaceAll(products []Product) error {
	if err := ValidateAll(products); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}

	data, err := json.MarshalIndent(products, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal catalog: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create catalog directory %s: %w", dir, err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write catalog file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		return fmt.Errorf("failed to commit catalog file: %w", err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("failed to stat catalog file after write: %w", err)
	}

	s.snapshot = make([]Product, len(products))
	copy(s.snapshot, products)
	s.loadedAt = time.Now()
	s.fileMod = info.ModTime()

	recordReplacement(len(products))
	s.logger.Info().Int("products", len(products)).Msg("Catalog replaced")
	return nil
}

// ensureFresh reloads the snapshot when the file changed on disk.
func (s *FileStore) ensureFresh() error {
	info, err := os.Stat(s.path)
	if err != nil {
		recordLoadError()
		return fmt.Errorf("failed to stat catalog file %s: %w", s.path, err)
	}

	s.mu.RLock()
	fresh := s.snapshot != nil && info.ModTime().Equal(s.fileMod)
	s.mu.RUnlock()

	if fresh {
		recordLoad(true)
		return nil
	}

	_, err, _ = s.loadGroup.Do("load", func() (interface{}, error) {
		return nil, s.load()
	})
	if err != nil {
		recordLoadError()
		return err
	}
	recordLoad(false)
	return nil
}

// load reads and decodes the catalog file into the snapshot.
func (s *FileStore) load() error {
	start := time.Now()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return fmt.Errorf("failed to read catalog file %s: %w", s.path, err)
	}

	var products []Product
	if err := json.Unmarshal(data, &products); err != nil {
		return fmt.Errorf("failed to parse catalog file %s: %w", s.path, err)
	}

	info, err := os.Stat(s.path)
	if err != nil {
		return fmt.Errorf("failed to stat catalog file %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.snapshot = products
	s.loadedAt = time.Now()
	s.fileMod = info.ModTime()
	s.mu.Unlock()

	s.logger.Debug().
		Int("products", len(products)).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded from disk")
	return nil
}
