// Package state loads and saves the application state through a storage backend.
package state

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/storage"
)

// Merge overlays the top-level keys present in blob onto defaults. A present key
// replaces the default value for that key in full; absent keys keep the default.
func Merge(defaults *models.State, blob []byte) (*models.State, error) {
	base, err := json.Marshal(defaults)
	if err != nil {
		return nil, fmt.Errorf("failed to encode defaults: %w", err)
	}
	fields := map[string]json.RawMessage{}
	if err := json.Unmarshal(base, &fields); err != nil {
		return nil, fmt.Errorf("failed to decode defaults: %w", err)
	}

	var loaded map[string]json.RawMessage
	if err := json.Unmarshal(blob, &loaded); err != nil {
		return nil, fmt.Errorf("failed to parse saved state: %w", err)
	}
	for k, v := range loaded {
		fields[k] = v
	}

	merged, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to encode merged state: %w", err)
	}
	out := &models.State{}
	if err := json.Unmarshal(merged, out); err != nil {
		return nil, fmt.Errorf("failed to parse saved state: %w", err)
	}
	return out, nil
}

// Store reads and writes the state record. It never reports failures to its callers.
type Store struct {
	backend  storage.Provider
	defaults func() *models.State
}

func NewStore(backend storage.Provider) *Store {
	return &Store{backend: backend, defaults: Defaults}
}

// Load returns the persisted state merged over the defaults, or the defaults when
// nothing usable is stored.
func (s *Store) Load() *models.State {
	blob, err := s.backend.ReadState()
	if err != nil {
		if errors.Is(err, storage.ErrNoState) {
			logger.Info("No saved state, starting from defaults")
		} else {
			logger.Warn("Failed to read saved state, using defaults", "error", err)
		}
		return s.defaults()
	}

	st, err := Merge(s.defaults(), blob)
	if err != nil {
		logger.Warn("Saved state is unreadable, using defaults", "error", err)
		return s.defaults()
	}

	if floor := st.MaxTaskID() + 1; st.NextTaskID < floor {
		st.NextTaskID = floor
	}
	return st
}

// Save writes the whole state. Failures are logged and dropped.
func (s *Store) Save(st *models.State) {
	data, err := json.Marshal(st)
	if err != nil {
		logger.Error("Failed to encode state", "error", err)
		return
	}
	if err := s.backend.WriteState(data); err != nil {
		logger.Warn("Failed to save state", "error", err)
	}
}
