package storage

import "github.com/mklein/gateplan/internal/models"

// Provider persists the single application record. The core mutates the
// in-memory state directly and calls Save afterward; a save failure is
// reported but never rolls the in-memory mutation back.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// State returns the loaded in-memory record. Only valid after Init or
	// Load has succeeded.
	State() *models.State

	// Save writes the whole record.
	Save() error

	// Utils
	GetConfigPath() string
}
