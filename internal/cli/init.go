package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/scheduler"
	"github.com/julianstephens/dawg/internal/state"
	"github.com/julianstephens/dawg/internal/storage"
)

type InitCmd struct {
	Force bool `help:"Delete the existing local state file before initializing."`
}

func (c *InitCmd) Run(ctx *Context) error {
	if c.Force {
		if !ctx.isLocal() {
			return errors.New("--force is only supported for local state files")
		}
		path := ctx.Store.GetConfigPath()
		if _, err := os.Stat(path); err == nil {
			if err := ctx.Store.Close(); err != nil {
				return fmt.Errorf("failed to close existing state: %w", err)
			}
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to delete existing state: %w", err)
			}
			fmt.Printf("Deleted existing state at: %s\n", path)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to access existing state: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	// seed the first-run state so every backend starts from the same record
	if _, err := ctx.Store.ReadState(); errors.Is(err, storage.ErrNoState) {
		l, err := ctx.Ladder()
		if err != nil {
			return err
		}
		st := state.NewStore(ctx.Store)
		eng := engine.New(state.Defaults(), engine.Options{Saver: st, Ladder: l, Scheduler: scheduler.Immediate{}})
		st.Save(eng.Snapshot())
		eng.Close()
	}

	fmt.Printf("Initialized dawg storage at: %s\n", ctx.Store.GetConfigPath())
	return nil
}
