package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrNoState is returned by ReadState when nothing has been persisted yet.
	ErrNoState = errors.New("no saved state")
	// ErrNotInitialized is returned by Load when the storage location does not exist.
	ErrNotInitialized = errors.New("storage not initialized, run 'dawg init' first")
)

// Provider persists the single serialized application state record.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// State
	ReadState() ([]byte, error)
	WriteState([]byte) error

	// Utils
	GetConfigPath() string
}

// IsPostgres reports whether config is a PostgreSQL connection string rather than a file path.
func IsPostgres(config string) bool {
	return strings.HasPrefix(config, "postgres://") ||
		strings.HasPrefix(config, "postgresql://") ||
		strings.Contains(config, "host=")
}

// ExpandPath replaces a leading ~ with the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// Open picks a backend for config: PostgreSQL for connection strings, a JSON file
// for *.json paths and SQLite otherwise. The provider is returned unloaded.
func Open(config string) (Provider, error) {
	if IsPostgres(config) {
		if _, err := ValidateConnString(config); err != nil {
			return nil, err
		}
		return NewPostgresStore(config), nil
	}

	path, err := ExpandPath(config)
	if err != nil {
		return nil, err
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return NewJSONStore(path), nil
	}
	return NewSQLiteStore(path), nil
}

// Migrator is implemented by the SQL backends.
type Migrator interface {
	Migrate(logFn func(string)) (int, error)
	SchemaVersion() (current, latest int, err error)
}
