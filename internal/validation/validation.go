package validation

import (
	"fmt"
	"strings"

	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/ladder"
	"github.com/julianstephens/dawg/internal/models"
)

// ConflictType represents the type of invariant violation
type ConflictType string

const (
	ConflictProgressMismatch ConflictType = "progress_mismatch"
	ConflictDuplicateTaskID  ConflictType = "duplicate_task_id"
	ConflictSkillOutOfRange  ConflictType = "skill_out_of_range"
	ConflictUnknownCategory  ConflictType = "unknown_category"
	ConflictRankMismatch     ConflictType = "rank_mismatch"
	ConflictProfileDrift     ConflictType = "profile_drift"
	ConflictTaskIDCounter    ConflictType = "task_id_counter"
)

// Conflict is one broken invariant in a saved state.
type Conflict struct {
	Type        ConflictType
	Description string
	TaskIDs     []int
	Fixable     bool
}

type ValidationResult struct {
	Conflicts []Conflict
}

// FixAction describes one repair applied by Fix.
type FixAction struct {
	Action         string
	SourceConflict Conflict
}

func (vr *ValidationResult) HasConflicts() bool {
	return len(vr.Conflicts) > 0
}

// FormatReport returns a human-readable report of all conflicts
func (vr *ValidationResult) FormatReport() string {
	if !vr.HasConflicts() {
		return "No conflicts detected."
	}

	var b strings.Builder
	b.WriteString("Conflicts detected:\n")
	for _, c := range vr.Conflicts {
		fmt.Fprintf(&b, "- %s\n", c.Description)
	}
	return b.String()
}

// Validator checks a state against the rank ladder it is played with.
type Validator struct {
	ladder *ladder.Ladder
}

func New(l *ladder.Ladder) *Validator {
	if l == nil {
		l = ladder.Default()
	}
	return &Validator{ladder: l}
}

func (v *Validator) Validate(s *models.State) ValidationResult {
	var result ValidationResult
	add := func(c Conflict) { result.Conflicts = append(result.Conflicts, c) }

	if completed := s.CompletedCount(); s.Progress.Current != completed || s.Progress.Total != len(s.Tasks) {
		add(Conflict{
			Type: ConflictProgressMismatch,
			Description: fmt.Sprintf("Progress is %d/%d but %d of %d tasks are completed",
				s.Progress.Current, s.Progress.Total, completed, len(s.Tasks)),
			Fixable: true,
		})
	}

	seen := map[int]bool{}
	for _, t := range s.Tasks {
		if seen[t.ID] {
			add(Conflict{
				Type:        ConflictDuplicateTaskID,
				Description: fmt.Sprintf("Task id %d is used more than once", t.ID),
				TaskIDs:     []int{t.ID},
			})
		}
		seen[t.ID] = true

		if _, ok := s.TaskCategories[t.Category]; !ok {
			add(Conflict{
				Type:        ConflictUnknownCategory,
				Description: fmt.Sprintf("Task %d (%s) has unknown category %q", t.ID, t.Text, t.Category),
				TaskIDs:     []int{t.ID},
			})
		}
	}

	if s.NextTaskID <= s.MaxTaskID() {
		add(Conflict{
			Type:        ConflictTaskIDCounter,
			Description: fmt.Sprintf("Next task id %d would reuse an existing id (highest is %d)", s.NextTaskID, s.MaxTaskID()),
			Fixable:     true,
		})
	}

	for _, sk := range s.Skills {
		if sk.Level < 0 || sk.Level > constants.MaxSkillLevel {
			add(Conflict{
				Type:        ConflictSkillOutOfRange,
				Description: fmt.Sprintf("Skill %s has level %d outside 0-%d", sk.Name, sk.Level, constants.MaxSkillLevel),
				Fixable:     true,
			})
		}
	}

	if target, ok := v.ladder.HighestSatisfied(s.Calendar.ConsecutiveDays); ok && models.RankFromEntry(target) != s.Level {
		add(Conflict{
			Type: ConflictRankMismatch,
			Description: fmt.Sprintf("Rank is %s (level %d) but a %d-day streak earns %s (level %d)",
				s.Level.Animal, s.Level.Number, s.Calendar.ConsecutiveDays, target.Name, target.Level),
			Fixable: true,
		})
	}

	p := s.UserProfile
	if p.Avatar != s.Level.Emoji || p.Name != s.Level.Title || p.CurrentLevel != s.Level.Number || p.CurrentStreak != s.Calendar.ConsecutiveDays {
		add(Conflict{
			Type:        ConflictProfileDrift,
			Description: "Profile rank or streak does not match the current rank and calendar",
			Fixable:     true,
		})
	}

	return result
}

// Fix repairs every fixable conflict in place and reports what it changed.
func (v *Validator) Fix(s *models.State, result ValidationResult) []FixAction {
	var actions []FixAction
	for _, c := range result.Conflicts {
		if !c.Fixable {
			continue
		}
		switch c.Type {
		case ConflictProgressMismatch:
			s.RecountProgress()
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Recounted progress to %d/%d", s.Progress.Current, s.Progress.Total),
				SourceConflict: c,
			})
		case ConflictTaskIDCounter:
			s.NextTaskID = s.MaxTaskID() + 1
			actions = append(actions, FixAction{
				Action:         fmt.Sprintf("Raised next task id to %d", s.NextTaskID),
				SourceConflict: c,
			})
		case ConflictSkillOutOfRange:
			for i := range s.Skills {
				s.Skills[i].Level = min(max(s.Skills[i].Level, 0), constants.MaxSkillLevel)
			}
			actions = append(actions, FixAction{Action: "Clamped skill levels", SourceConflict: c})
		case ConflictRankMismatch:
			if target, ok := v.ladder.HighestSatisfied(s.Calendar.ConsecutiveDays); ok {
				s.Level = models.RankFromEntry(target)
				s.SyncProfile()
				actions = append(actions, FixAction{Action: "Set rank to " + target.Name, SourceConflict: c})
			}
		case ConflictProfileDrift:
			s.SyncProfile()
			actions = append(actions, FixAction{Action: "Synced profile with rank and streak", SourceConflict: c})
		}
	}
	return actions
}
