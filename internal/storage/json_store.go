package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/julianstephens/levelup/internal/models"
	"github.com/julianstephens/levelup/internal/progress"
)

// document is the on-disk layout of the JSON store. It must stay stable so
// exports from older installs keep loading.
type document struct {
	Version int           `json:"version"`
	State   *models.State `json:"state"`
}

// JSONStore keeps the whole state in a single JSON document. It is the
// storage backend for ".json" config paths.
type JSONStore struct {
	path string
	doc  *document
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	s.doc = &document{
		Version: 1,
		State:   progress.NewState(time.Now()),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run 'levelup init' first")
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	s.doc = &document{}
	if err := json.Unmarshal(data, s.doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if s.doc.State == nil {
		s.doc.State = progress.NewState(time.Now())
	}
	normalize(s.doc.State)

	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) GetState() (*models.State, error) {
	if s.doc == nil {
		return nil, fmt.Errorf("storage not loaded")
	}
	return s.doc.State, nil
}

func (s *JSONStore) SaveState(state *models.State) error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	s.doc.State = state
	return s.save()
}

// GetConfigPath returns the path to the underlying storage file.
//
// Concurrency note: the store is not safe for concurrent use; one process at
// a time owns the file. The session lock enforces this at startup.
func (s *JSONStore) GetConfigPath() string {
	return s.path
}

// normalize repairs maps and slices that an older or hand-edited document
// may have left null.
func normalize(state *models.State) {
	if state.DailyHabits == nil {
		state.DailyHabits = map[string]models.DailyHabitEntry{}
	}
	if state.DailyLogs == nil {
		state.DailyLogs = map[string]models.DailyLog{}
	}
	if state.UnlockedBadges == nil {
		state.UnlockedBadges = []string{}
	}
}
