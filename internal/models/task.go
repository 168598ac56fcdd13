package models

import (
	"fmt"
	"math"

	"github.com/julianstephens/dawg/internal/constants"
)

type Task struct {
	ID        int    `json:"id"`
	Number    string `json:"number,omitempty"` // two-digit display number, e.g. "03"
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Category  string `json:"category"`
	Points    int    `json:"points"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
}

// FormatNumber renders a 1-based list position the way task numbers are displayed.
func FormatNumber(position int) string {
	return fmt.Sprintf("%02d", position)
}

type Skill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
	Color string `json:"color,omitempty"`
	Angle int    `json:"angle"` // chart angle in degrees
}

// Raise adds delta to the skill level, clamped to the skill ceiling.
func (s *Skill) Raise(delta int) int {
	before := s.Level
	s.Level = min(constants.MaxSkillLevel, s.Level+delta)
	if s.Level < before {
		// a persisted level above the ceiling is left alone rather than lowered
		s.Level = before
	}
	return s.Level - before
}

// SkillDelta is the level gain a task of the given points grants its category.
func SkillDelta(points int) int {
	return points / 2
}

// OverallRating is the single number shown above the skills chart.
func OverallRating(skills []Skill) int {
	total := 0
	for _, s := range skills {
		total += s.Level
	}
	// Half rounds up, not away from zero.
	return int(math.Floor(float64(total)/60 + 0.5))
}
