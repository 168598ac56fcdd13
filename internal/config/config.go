// Package config reads the optional YAML settings file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dawg/internal/constants"
)

// Settings tune pacing and presentation. None of them change progression rules.
type Settings struct {
	HoldDuration       time.Duration `yaml:"hold_duration"`
	HoldRepeatDelay    time.Duration `yaml:"hold_repeat_delay"`
	HoldReleaseWindow  time.Duration `yaml:"hold_release_window"`
	DayCompletionDelay time.Duration `yaml:"day_completion_delay"`
	DailyResetDelay    time.Duration `yaml:"daily_reset_delay"`

	// LadderFile optionally replaces the built-in rank ladder.
	LadderFile string `yaml:"ladder_file,omitempty"`

	TrayNotifications bool `yaml:"tray_notifications"`
}

func Default() Settings {
	return Settings{
		HoldDuration:       constants.DefaultHoldDuration,
		HoldRepeatDelay:    constants.DefaultHoldRepeatDelay,
		HoldReleaseWindow:  constants.DefaultHoldReleaseWindow,
		DayCompletionDelay: constants.DefaultDayCompletionDelay,
		DailyResetDelay:    constants.DefaultDailyResetDelay,
		TrayNotifications:  false,
	}
}

// Load reads path over the defaults. A missing file yields the defaults.
func Load(path string) (Settings, error) {
	s := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return s, nil
		}
		return s, fmt.Errorf("failed to read settings: %w", err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("failed to parse settings %s: %w", path, err)
	}
	if err := s.Validate(); err != nil {
		return Default(), fmt.Errorf("invalid settings %s: %w", path, err)
	}

	if s.LadderFile != "" && !filepath.IsAbs(s.LadderFile) {
		s.LadderFile = filepath.Join(filepath.Dir(path), s.LadderFile)
	}
	return s, nil
}

func (s Settings) Validate() error {
	if s.HoldDuration <= 0 {
		return errors.New("hold_duration must be positive")
	}
	if s.HoldReleaseWindow <= 0 {
		return errors.New("hold_release_window must be positive")
	}
	if s.HoldRepeatDelay < s.HoldReleaseWindow {
		return errors.New("hold_repeat_delay cannot be shorter than hold_release_window")
	}
	if s.DayCompletionDelay <= 0 || s.DailyResetDelay <= 0 {
		return errors.New("day_completion_delay and daily_reset_delay must be positive")
	}
	return nil
}

// Save writes s to path, creating the directory if needed.
func Save(path string, s Settings) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	return nil
}
