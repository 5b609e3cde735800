package storage

import "github.com/julianstephens/levelup/internal/models"

// Provider is the persistence gateway. State is read and written as a full
// snapshot: every mutating operation loads the whole aggregate, computes the
// new value, and writes it back before the operation reports completion.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Snapshot
	GetState() (*models.State, error)
	SaveState(*models.State) error

	// Utils
	GetConfigPath() string
}
