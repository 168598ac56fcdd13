package cli

import (
	"fmt"
	"time"

	"github.com/julianstephens/dawg/internal/backup"
	"github.com/julianstephens/dawg/internal/config"
	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/keyring"
	"github.com/julianstephens/dawg/internal/ladder"
	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/notifier"
	"github.com/julianstephens/dawg/internal/scheduler"
	"github.com/julianstephens/dawg/internal/state"
	"github.com/julianstephens/dawg/internal/storage"
)

type Context struct {
	Store        storage.Provider
	Settings     config.Settings
	SettingsPath string
	ConfigSource keyring.Source

	// Now overrides the engine clock. Nil means time.Now.
	Now func() time.Time
}

// Ladder returns the ladder named in the settings, or nil to let the engine use the
// saved or built-in one.
func (c *Context) Ladder() (*ladder.Ladder, error) {
	if c.Settings.LadderFile == "" {
		return nil, nil
	}
	l, err := ladder.LoadFile(c.Settings.LadderFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load ladder file: %w", err)
	}
	return l, nil
}

// OpenEngine loads the saved state and hands it to a new engine. One-shot commands
// pass scheduler.Immediate so a day transition finishes before the process exits.
func (c *Context) OpenEngine(sched scheduler.Scheduler, sinks ...engine.Sink) (*engine.Engine, error) {
	if err := c.Store.Load(); err != nil {
		return nil, err
	}
	l, err := c.Ladder()
	if err != nil {
		return nil, err
	}
	if c.Settings.TrayNotifications {
		sinks = append(sinks, notifier.New())
	}

	st := state.NewStore(c.Store)
	return engine.New(st.Load(), engine.Options{
		Saver:              st,
		Ladder:             l,
		Scheduler:          sched,
		Sinks:              sinks,
		Now:                c.Now,
		DayCompletionDelay: c.Settings.DayCompletionDelay,
		DailyResetDelay:    c.Settings.DailyResetDelay,
	}), nil
}

// isLocal reports whether the state lives in a file that can be backed up.
func (c *Context) isLocal() bool {
	_, pg := c.Store.(*storage.PostgresStore)
	return !pg
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	if !c.isLocal() {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}

func formatTask(t models.Task) string {
	mark := " "
	if t.Completed {
		mark = "✓"
	}
	line := fmt.Sprintf("  [%s] %3d  %s  %-24s %-10s +%d XP", mark, t.ID, t.Number, t.Text, t.Category, t.Points)
	if t.IsDefault {
		line += "  (default)"
	}
	return line
}
