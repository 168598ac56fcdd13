package cli

import (
	"fmt"

	"github.com/julianstephens/dawg/internal/ladder"
	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/state"
	"github.com/julianstephens/dawg/internal/validation"
)

type ValidateCmd struct {
	Fix bool `help:"Repair fixable conflicts and save the result."`
}

func (cmd *ValidateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load storage: %w", err)
	}

	// the saved state is checked as stored, without going through the engine's startup repairs
	store := state.NewStore(ctx.Store)
	st := store.Load()
	l, err := ctx.validationLadder(st)
	if err != nil {
		return err
	}

	validator := validation.New(l)
	fmt.Println("Validating saved state...")
	result := validator.Validate(st)

	fmt.Println()
	fmt.Println(result.FormatReport())

	if !cmd.Fix || !result.HasConflicts() {
		return nil
	}

	actions := validator.Fix(st, result)
	if len(actions) == 0 {
		fmt.Println("Nothing could be fixed automatically.")
		return nil
	}
	store.Save(st)
	for _, a := range actions {
		fmt.Printf("✓ %s\n", a.Action)
	}
	logger.Info("Applied state fixes", "count", len(actions))
	return nil
}

// validationLadder mirrors the engine's ladder choice: settings file, then the saved
// ladder, then the built-in one.
func (c *Context) validationLadder(st *models.State) (*ladder.Ladder, error) {
	l, err := c.Ladder()
	if err != nil || l != nil {
		return l, err
	}
	if saved, err := ladder.New(st.AnimalLevels); err == nil {
		return saved, nil
	}
	return ladder.Default(), nil
}
