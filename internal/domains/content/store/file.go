package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"holipass/config"
	"holipass/internal/domains/content/model"

	"github.com/rs/zerolog/log"
)

const contentFileName = "event_content.json"

type fileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(cfg *config.Config) FileStore {
	return &fileStore{
		path: filepath.Join(cfg.Storage.DataDir, contentFileName),
	}
}

// NewFileStoreAt is NewFileStore with an explicit file path, used by tests.
func NewFileStoreAt(path string) FileStore {
	return &fileStore{path: path}
}

func (s *fileStore) Load() (model.EventContent, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false
	}

	if err != nil {
		log.Warn().Err(err).Msg("failed to read content fallback file")

		return nil, false
	}

	var content model.EventContent
	if err = json.Unmarshal(data, &content); err != nil {
		log.Warn().Err(err).Msg("failed to parse content fallback file")

		return nil, false
	}

	return content, true
}

// Save writes the document through a temp file and an atomic rename, same
// contract as the booking cache.
func (s *fileStore) Save(content model.EventContent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(content, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal event content: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create content directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, contentFileName+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp content file: %w", err)
	}

	tmpPath := tmp.Name()

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)

		return fmt.Errorf("failed to write temp content file: %w", err)
	}

	if err = tmp.Close(); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to close temp content file: %w", err)
	}

	if err = os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)

		return fmt.Errorf("failed to replace content file: %w", err)
	}

	return nil
}
