// Package ladder holds the ordered animal ranks and the streak thresholds that unlock them.
package ladder

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/julianstephens/dawg/internal/models"
)

// Ladder is an immutable, ascending list of ranks.
type Ladder struct {
	entries []models.RankEntry
}

// Default returns the built-in five-animal ladder.
func Default() *Ladder {
	l, err := New([]models.RankEntry{
		{Level: 1, Name: "PUPPY", Emoji: "🐶", Title: "THE BEGINNER", DaysRequired: 3},
		{Level: 2, Name: "BEAGLE", Emoji: "🐕", Title: "THE GLADIATOR", DaysRequired: 5},
		{Level: 3, Name: "WOLF", Emoji: "🐺", Title: "THE WARRIOR", DaysRequired: 7},
		{Level: 4, Name: "LION", Emoji: "🦁", Title: "THE ALPHA", DaysRequired: 9},
		{Level: 5, Name: "TIGER", Emoji: "🐅", Title: "THE APEX", DaysRequired: 11},
	})
	if err != nil {
		panic(err)
	}
	return l
}

// New validates entries and builds a ladder from them.
// Levels must start at 1 or above and strictly ascend; daysRequired must not decrease.
func New(entries []models.RankEntry) (*Ladder, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("ladder has no entries")
	}
	for i, e := range entries {
		if e.Level < 1 {
			return nil, fmt.Errorf("rank %q: level must be at least 1, got %d", e.Name, e.Level)
		}
		if e.DaysRequired < 0 {
			return nil, fmt.Errorf("rank %q: days required cannot be negative", e.Name)
		}
		if e.Name == "" {
			return nil, fmt.Errorf("rank at level %d has no name", e.Level)
		}
		if i == 0 {
			continue
		}
		prev := entries[i-1]
		if e.Level <= prev.Level {
			return nil, fmt.Errorf("rank %q: level %d does not ascend from %d", e.Name, e.Level, prev.Level)
		}
		if e.DaysRequired < prev.DaysRequired {
			return nil, fmt.Errorf("rank %q: days required %d is below %d", e.Name, e.DaysRequired, prev.DaysRequired)
		}
	}
	return &Ladder{entries: append([]models.RankEntry(nil), entries...)}, nil
}

type ladderFile struct {
	Ranks []models.RankEntry `yaml:"ranks"`
}

// LoadFile reads a ladder from a YAML file of the form:
//
//	ranks:
//	  - level: 1
//	    name: PUPPY
//	    emoji: 🐶
//	    title: THE BEGINNER
//	    days_required: 3
func LoadFile(path string) (*Ladder, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read ladder file: %w", err)
	}
	var f ladderFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse ladder file: %w", err)
	}
	l, err := New(f.Ranks)
	if err != nil {
		return nil, fmt.Errorf("invalid ladder file %s: %w", path, err)
	}
	return l, nil
}

// Entries returns a copy of the ranks in ascending order.
func (l *Ladder) Entries() []models.RankEntry {
	return append([]models.RankEntry(nil), l.entries...)
}

func (l *Ladder) Len() int {
	return len(l.entries)
}

// EntryForLevel looks up the rank with the given level number.
func (l *Ladder) EntryForLevel(level int) (models.RankEntry, bool) {
	for _, e := range l.entries {
		if e.Level == level {
			return e, true
		}
	}
	return models.RankEntry{}, false
}

// Next returns the rank immediately above level, if any.
func (l *Ladder) Next(level int) (models.RankEntry, bool) {
	for _, e := range l.entries {
		if e.Level > level {
			return e, true
		}
	}
	return models.RankEntry{}, false
}

// HighestSatisfied scans from the top and returns the first rank whose
// threshold the streak meets. It reports false when no rank qualifies.
func (l *Ladder) HighestSatisfied(consecutiveDays int) (models.RankEntry, bool) {
	for i := len(l.entries) - 1; i >= 0; i-- {
		if l.entries[i].DaysRequired <= consecutiveDays {
			return l.entries[i], true
		}
	}
	return models.RankEntry{}, false
}
