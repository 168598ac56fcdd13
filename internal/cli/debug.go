package cli

import (
	"encoding/json"
	"fmt"

	"github.com/julianstephens/dawg/internal/state"
)

type DebugCmd struct {
	DBPath    *DebugDBPathCmd    `cmd:"" help:"Show the storage location."`
	DumpState *DebugDumpStateCmd `cmd:"" help:"Dump the saved state as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *Context) error {
	// machine-readable for scripts
	output := map[string]string{
		"path":   ctx.Store.GetConfigPath(),
		"source": string(ctx.ConfigSource),
	}

	jsonBytes, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}

type DebugDumpStateCmd struct {
	Raw bool `help:"Print the stored record without merging it over the defaults."`
}

func (cmd *DebugDumpStateCmd) Run(ctx *Context) error {
	if err := ctx.Store.Load(); err != nil {
		return fmt.Errorf("failed to load database: %w", err)
	}

	blob, err := ctx.Store.ReadState()
	if err != nil {
		return fmt.Errorf("failed to read state: %w", err)
	}
	if cmd.Raw {
		fmt.Println(string(blob))
		return nil
	}

	st, err := state.Merge(state.Defaults(), blob)
	if err != nil {
		return fmt.Errorf("failed to decode state: %w", err)
	}
	jsonBytes, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	fmt.Println(string(jsonBytes))
	return nil
}
