package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/julianstephens/dawg/internal/backup"
	"github.com/julianstephens/dawg/internal/state"
	"github.com/julianstephens/dawg/internal/storage"
	"github.com/julianstephens/dawg/internal/validation"
)

type DoctorCmd struct{}

func (cmd *DoctorCmd) Run(ctx *Context) error {
	fmt.Println("Running diagnostics...")
	fmt.Println()

	hasError := false

	check := func(name string, err error) {
		if err != nil {
			fmt.Printf("❌ %s: FAIL\n", name)
			fmt.Printf("   Error: %v\n", err)
			hasError = true
			return
		}
		fmt.Printf("✓ %s: OK\n", name)
	}

	err := checkStoreReachable(ctx)
	check("Storage reachable", err)

	if err == nil {
		check("Schema version", checkSchemaVersion(ctx))
		check("Saved state", checkSavedState(ctx))
		check("State invariants", checkValidation(ctx))
	} else {
		fmt.Printf("⊘ Schema version: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ Saved state: SKIPPED (storage not reachable)\n")
		fmt.Printf("⊘ State invariants: SKIPPED (storage not reachable)\n")
	}

	if ctx.Settings.LadderFile != "" {
		_, err := ctx.Ladder()
		check("Ladder file", err)
	}

	// Backups present (warning only)
	if ctx.isLocal() {
		if err := checkBackupsPresent(ctx); err != nil {
			fmt.Printf("⚠ Backups present: WARNING\n")
			fmt.Printf("   %v\n", err)
		} else {
			fmt.Printf("✓ Backups present: OK\n")
		}
	}

	check("Clock/timezone", checkClockTimezone())

	fmt.Println()
	if hasError {
		fmt.Println("Diagnostics completed with errors.")
		return fmt.Errorf("one or more health checks failed")
	}

	fmt.Println("All diagnostics passed!")
	return nil
}

func checkStoreReachable(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	if sqliteStore, ok := ctx.Store.(*storage.SQLiteStore); ok {
		db := sqliteStore.GetDB()
		if db == nil {
			return fmt.Errorf("database connection is nil")
		}
		var result int
		if err := db.QueryRow("SELECT 1").Scan(&result); err != nil {
			return fmt.Errorf("failed to query database: %w", err)
		}
	}
	return nil
}

func checkSchemaVersion(ctx *Context) error {
	m, ok := ctx.Store.(storage.Migrator)
	if !ok {
		// JSON store has no schema
		return nil
	}

	current, latest, err := m.SchemaVersion()
	if err != nil {
		return fmt.Errorf("failed to read schema version: %w", err)
	}
	if current > latest {
		return fmt.Errorf("database schema version (%d) is newer than supported version (%d)", current, latest)
	}
	if current < latest {
		return fmt.Errorf("migrations incomplete: current version %d, latest version %d, run 'dawg migrate'", current, latest)
	}
	return nil
}

// checkSavedState fails when a record exists but cannot be decoded; the app would
// silently start over from the defaults.
func checkSavedState(ctx *Context) error {
	blob, err := ctx.Store.ReadState()
	if err != nil {
		if errors.Is(err, storage.ErrNoState) {
			fmt.Printf("   Note: nothing saved yet, defaults will be used\n")
			return nil
		}
		return err
	}
	if _, err := state.Merge(state.Defaults(), blob); err != nil {
		return err
	}
	return nil
}

func checkValidation(ctx *Context) error {
	st := state.NewStore(ctx.Store).Load()
	l, err := ctx.validationLadder(st)
	if err != nil {
		return err
	}
	result := validation.New(l).Validate(st)
	if result.HasConflicts() {
		return fmt.Errorf("%d conflict(s) found, run 'dawg validate --fix'", len(result.Conflicts))
	}
	return nil
}

func checkBackupsPresent(ctx *Context) error {
	mgr := backup.NewManager(ctx.Store.GetConfigPath())
	backups, err := mgr.ListBackups()
	if err != nil {
		return fmt.Errorf("failed to list backups: %w", err)
	}

	if len(backups) == 0 {
		return fmt.Errorf("no backups found - consider creating one with 'dawg backup create'")
	}
	return nil
}

func checkClockTimezone() error {
	now := time.Now()

	// day completion is stamped with the local date
	if now.Year() < 2020 || now.Year() > 2100 {
		return fmt.Errorf("system time appears incorrect: %s", now.Format(time.RFC3339))
	}

	_, offset := now.Zone()
	if offset == 0 && now.Location() == time.UTC {
		fmt.Printf("   Note: timezone is UTC\n")
	}
	return nil
}
