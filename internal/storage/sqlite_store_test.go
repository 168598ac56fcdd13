package storage

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestSQLiteStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store := NewSQLiteStore(filepath.Join(t.TempDir(), "dawg.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSQLiteStoreInitCreatesSchema(t *testing.T) {
	store := setupTestSQLiteStore(t)

	var n int
	err := store.GetDB().QueryRow("SELECT count(*) FROM sqlite_master WHERE type='table' AND name='app_state'").Scan(&n)
	if err != nil {
		t.Fatalf("schema lookup failed: %v", err)
	}
	if n != 1 {
		t.Error("app_state table was not created")
	}

	if applied, err := store.Migrate(nil); err != nil || applied != 0 {
		t.Errorf("Migrate after Init = %d, %v; want 0, nil", applied, err)
	}
}

func TestSQLiteStoreReadWriteState(t *testing.T) {
	store := setupTestSQLiteStore(t)

	if _, err := store.ReadState(); !errors.Is(err, ErrNoState) {
		t.Fatalf("ReadState on empty db = %v, want ErrNoState", err)
	}

	if err := store.WriteState([]byte(`{"nextTaskId":6}`)); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	if err := store.WriteState([]byte(`{"nextTaskId":7}`)); err != nil {
		t.Fatalf("second WriteState failed: %v", err)
	}

	got, err := store.ReadState()
	if err != nil {
		t.Fatalf("ReadState failed: %v", err)
	}
	if string(got) != `{"nextTaskId":7}` {
		t.Errorf("ReadState() = %s, want the latest write", got)
	}

	var rows int
	if err := store.GetDB().QueryRow("SELECT count(*) FROM app_state").Scan(&rows); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if rows != 1 {
		t.Errorf("app_state has %d rows, want exactly 1", rows)
	}
}

func TestSQLiteStoreLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dawg.db")

	if err := NewSQLiteStore(path).Load(); !errors.Is(err, ErrNotInitialized) {
		t.Fatalf("Load before Init = %v, want ErrNotInitialized", err)
	}

	first := NewSQLiteStore(path)
	if err := first.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	if err := first.WriteState([]byte(`{"tasks":[]}`)); err != nil {
		t.Fatalf("WriteState failed: %v", err)
	}
	first.Close()

	second := NewSQLiteStore(path)
	if err := second.Load(); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	defer second.Close()

	got, err := second.ReadState()
	if err != nil {
		t.Fatalf("ReadState failed: %v", err)
	}
	if string(got) != `{"tasks":[]}` {
		t.Errorf("ReadState() after reopen = %s", got)
	}
}

func TestSQLiteStoreSchemaVersion(t *testing.T) {
	store := setupTestSQLiteStore(t)

	var m Migrator = store
	current, latest, err := m.SchemaVersion()
	if err != nil {
		t.Fatalf("SchemaVersion failed: %v", err)
	}
	if current != latest || latest < 1 {
		t.Errorf("SchemaVersion() = %d, %d; want an up to date schema", current, latest)
	}

	closed := NewSQLiteStore(filepath.Join(t.TempDir(), "closed.db"))
	if _, _, err := closed.SchemaVersion(); err == nil {
		t.Error("expected an error before the database is opened")
	}
}
