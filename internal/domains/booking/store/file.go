package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"holipass/config"
	"holipass/internal/domains/booking/model"
)

const cacheFileName = "bookings.json"

type fileStore struct {
	path string
	mu   sync.Mutex
}

// NewCacheStore builds the JSON fallback store under the configured data
// directory. On free-tier hosting the directory is ephemeral, which is why
// the spreadsheet remains the long-term archive.
func NewCacheStore(cfg *config.Config) CacheStore {
	return &fileStore{
		path: filepath.Join(cfg.Storage.DataDir, cacheFileName),
	}
}

// NewCacheStoreAt is NewCacheStore with an explicit file path, used by tests.
func NewCacheStoreAt(path string) CacheStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() ([]model.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return []model.Booking{}, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read booking cache file: %w", err)
	}

	var bookings []model.Booking
	if err = json.Unmarshal(data, &bookings); err != nil {
		return nil, fmt.Errorf("failed to parse booking cache file: %w", err)
	}

	return bookings, nil
}

// Save writes the full list through a temp file and an atomic rename, so a
// crash mid-write never corrupts the file readers observe.
func (s *fileStore) Save(bookings []model.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if bookings == nil {
		bookings = []model.Booking{}
	}

	data, err := json.MarshalIndent(bookings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal bookings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, cacheFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp cache file: %w", err)
	}

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to write temp cache file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to close temp cache file: %w", err)
	}

	if err = os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("failed to replace cache file: %w", err)
	}

	return nil
}
