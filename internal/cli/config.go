package cli

import (
	"errors"
	"fmt"

	"github.com/julianstephens/dawg/internal/keyring"
	"github.com/julianstephens/dawg/internal/storage"
)

// ConfigSetConnectionCmd stores a PostgreSQL connection string in the OS keyring.
type ConfigSetConnectionCmd struct {
	ConnectionString string `arg:"" help:"PostgreSQL connection string to store in the keyring."`
}

func (cmd *ConfigSetConnectionCmd) Run(ctx *Context) error {
	if !storage.IsPostgres(cmd.ConnectionString) {
		return errors.New("connection string must be a valid PostgreSQL connection string")
	}

	if _, err := storage.ValidateConnString(cmd.ConnectionString); err != nil {
		if !errors.Is(err, storage.ErrEmbeddedCredentials) {
			return fmt.Errorf("invalid connection string: %w", err)
		}
		// the keyring is encrypted, so a password is acceptable here
		fmt.Println("⚠️  Warning: Connection string contains embedded credentials.")
		fmt.Println("   It will be stored as-is in the encrypted OS keyring.")
	}

	if err := keyring.SetConnectionString(cmd.ConnectionString); err != nil {
		return fmt.Errorf("failed to store connection string in keyring: %w", err)
	}

	fmt.Println("✓ Connection string stored successfully in OS keyring")
	fmt.Println("  dawg will use it whenever --config is not given")
	return nil
}

// ConfigDeleteConnectionCmd removes the stored connection string.
type ConfigDeleteConnectionCmd struct{}

func (cmd *ConfigDeleteConnectionCmd) Run(ctx *Context) error {
	if err := keyring.DeleteConnectionString(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no connection string found in keyring")
		}
		return fmt.Errorf("failed to delete connection string from keyring: %w", err)
	}

	fmt.Println("✓ Connection string deleted from OS keyring")
	return nil
}

type ConfigShowCmd struct{}

func (cmd *ConfigShowCmd) Run(ctx *Context) error {
	location := ctx.Store.GetConfigPath()
	if connStr, err := keyring.GetConnectionString(); err == nil && ctx.ConfigSource == keyring.SourceKeyring {
		location = keyring.MaskPassword(connStr)
	}

	s := ctx.Settings
	fmt.Printf("Storage:              %s (from %s)\n", location, ctx.ConfigSource)
	fmt.Printf("Settings file:        %s\n", ctx.SettingsPath)
	fmt.Printf("Hold duration:        %s\n", s.HoldDuration)
	fmt.Printf("Hold repeat delay:    %s\n", s.HoldRepeatDelay)
	fmt.Printf("Hold release window:  %s\n", s.HoldReleaseWindow)
	fmt.Printf("Day completion delay: %s\n", s.DayCompletionDelay)
	fmt.Printf("Daily reset delay:    %s\n", s.DailyResetDelay)
	ladderFile := s.LadderFile
	if ladderFile == "" {
		ladderFile = "(built-in)"
	}
	fmt.Printf("Ladder file:          %s\n", ladderFile)
	fmt.Printf("Tray notifications:   %t\n", s.TrayNotifications)

	if keyring.IsAvailable() {
		fmt.Println("OS keyring:           available")
	} else {
		fmt.Println("OS keyring:           unavailable")
	}
	return nil
}
