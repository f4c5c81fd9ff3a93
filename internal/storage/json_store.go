package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mklein/gateplan/internal/migration"
	"github.com/mklein/gateplan/internal/models"
)

// JSONStore keeps the whole record as a single JSON blob on disk, the same
// boundary the original local-first app used.
type JSONStore struct {
	path  string
	state *models.State
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: ExpandPath(configPath),
	}
}

func (s *JSONStore) Init() error {
	// Create config directory if it doesn't exist
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Check if file already exists
	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.state = DefaultState()
	return s.Save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'gateplan init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	// Normalization absorbs legacy and partially-missing shapes instead of
	// failing the load.
	s.state = migration.Normalize(data)
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) State() *models.State {
	return s.state
}

func (s *JSONStore) Save() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}

	return nil
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
