package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dawg/internal/constants"
)

var difficultyNames = []string{"Easy", "Medium", "Hard"}

func difficultyOptions(current int) []huh.Option[int] {
	opts := make([]huh.Option[int], 0, len(constants.DifficultyPoints)+1)
	for i, p := range constants.DifficultyPoints {
		opts = append(opts, huh.NewOption(fmt.Sprintf("%s (+%d XP)", difficultyNames[i], p), p))
	}
	// tasks created outside the form may carry any positive value
	if current > 0 && !slices.Contains(constants.DifficultyPoints, current) {
		opts = append(opts, huh.NewOption(fmt.Sprintf("Custom (+%d XP)", current), current))
	}
	return opts
}

// NewTaskForm builds the add/edit form bound to fm.
func NewTaskForm(fm *TaskFormModel) *huh.Form {
	categories := make([]huh.Option[string], len(constants.Categories))
	for i, c := range constants.Categories {
		categories[i] = huh.NewOption(c, c)
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Task").
				Value(&fm.Text).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("task text cannot be empty")
					}
					return nil
				}),
			huh.NewSelect[string]().
				Title("Category").
				Options(categories...).
				Value(&fm.Category),
			huh.NewSelect[int]().
				Title("Difficulty").
				Options(difficultyOptions(fm.Points)...).
				Value(&fm.Points),
		),
	).WithTheme(huh.ThemeDracula())
}
