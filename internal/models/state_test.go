package models

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func sampleState() *State {
	return &State{
		Level:    Rank{Number: 2, Animal: "BEAGLE", Emoji: "🐕", Title: "THE GLADIATOR"},
		Progress: Progress{Current: 1, Total: 2},
		Skills: []Skill{
			{Name: "PHYSICAL", Level: 45},
			{Name: "MENTAL", Level: 99},
		},
		Tasks: []Task{
			{ID: 1, Text: "EXERCISE", Category: "PHYSICAL", Points: 12, Completed: true, IsDefault: true},
			{ID: 4, Text: "MEDITATE", Category: "MENTAL", Points: 6},
		},
		Calendar:       Calendar{ConsecutiveDays: 4, CompletedDays: []int{1, 2}},
		TaskCategories: DefaultCategoryColors(),
	}
}

func TestFindTaskAndSkill(t *testing.T) {
	s := sampleState()

	if got := s.FindTask(4); got != 1 {
		t.Errorf("FindTask(4) = %d, want 1", got)
	}
	if got := s.FindTask(42); got != -1 {
		t.Errorf("FindTask(42) = %d, want -1", got)
	}
	if sk := s.FindSkill("MENTAL"); sk == nil || sk.Level != 99 {
		t.Errorf("FindSkill(MENTAL) = %+v", sk)
	}
	if sk := s.FindSkill("mental"); sk != nil {
		t.Errorf("FindSkill must match exactly, got %+v", sk)
	}
}

func TestRecountProgress(t *testing.T) {
	s := sampleState()
	s.Tasks = append(s.Tasks, Task{ID: 9, Completed: true})
	s.RecountProgress()

	if s.Progress != (Progress{Current: 2, Total: 3}) {
		t.Errorf("RecountProgress() = %+v", s.Progress)
	}
	if got := s.MaxTaskID(); got != 9 {
		t.Errorf("MaxTaskID() = %d, want 9", got)
	}
}

func TestSkillRaiseClamps(t *testing.T) {
	tests := []struct {
		name      string
		level     int
		delta     int
		wantLevel int
		wantGain  int
	}{
		{name: "plain gain", level: 45, delta: 6, wantLevel: 51, wantGain: 6},
		{name: "clamped at ceiling", level: 99, delta: 6, wantLevel: 100, wantGain: 1},
		{name: "already at ceiling", level: 100, delta: 3, wantLevel: 100, wantGain: 0},
		{name: "zero delta", level: 10, delta: 0, wantLevel: 10, wantGain: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sk := Skill{Level: tt.level}
			gain := sk.Raise(tt.delta)
			if sk.Level != tt.wantLevel || gain != tt.wantGain {
				t.Errorf("Raise(%d) from %d = level %d gain %d, want %d/%d", tt.delta, tt.level, sk.Level, gain, tt.wantLevel, tt.wantGain)
			}
		})
	}
}

func TestSkillDelta(t *testing.T) {
	for points, want := range map[int]int{6: 3, 7: 3, 12: 6, 1: 0, 18: 9} {
		if got := SkillDelta(points); got != want {
			t.Errorf("SkillDelta(%d) = %d, want %d", points, got, want)
		}
	}
}

func TestOverallRating(t *testing.T) {
	defaults := []Skill{{Level: 45}, {Level: 25}, {Level: 55}, {Level: 30}, {Level: 35}, {Level: 20}}
	if got := OverallRating(defaults); got != 4 {
		t.Errorf("OverallRating(defaults) = %d, want 4", got)
	}
	if got := OverallRating([]Skill{{Level: 30}}); got != 1 {
		t.Errorf("OverallRating(30) = %d, want 1 (half rounds up)", got)
	}
	if got := OverallRating(nil); got != 0 {
		t.Errorf("OverallRating(nil) = %d, want 0", got)
	}
}

func TestSyncProfile(t *testing.T) {
	s := sampleState()
	s.SyncProfile()

	want := Profile{Name: "THE GLADIATOR", Avatar: "🐕", CurrentLevel: 2, CurrentStreak: 4}
	if diff := cmp.Diff(want, s.UserProfile); diff != "" {
		t.Errorf("SyncProfile() mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkCompleted(t *testing.T) {
	c := Calendar{CompletedDays: []int{22}}
	c.MarkCompleted(27, "2025-07-27")
	c.MarkCompleted(27, "2025-07-27")

	if diff := cmp.Diff([]int{22, 27}, c.CompletedDays); diff != "" {
		t.Errorf("CompletedDays mismatch (-want +got):\n%s", diff)
	}
	if !c.CompletionHistory["2025-07-27"] {
		t.Error("CompletionHistory missing 2025-07-27")
	}
	if c.ConsecutiveDays != 0 {
		t.Errorf("MarkCompleted changed the streak to %d", c.ConsecutiveDays)
	}
}

func TestCloneIsDeep(t *testing.T) {
	s := sampleState()
	s.Calendar.CompletionHistory = map[string]bool{"2025-07-01": true}
	c := s.Clone()

	c.Tasks[0].Completed = false
	c.Skills[0].Level = 0
	c.Calendar.CompletedDays[0] = 99
	c.Calendar.CompletionHistory["2025-07-02"] = true
	c.TaskCategories["NEW"] = "#000000"

	if !s.Tasks[0].Completed || s.Skills[0].Level != 45 || s.Calendar.CompletedDays[0] != 1 {
		t.Error("Clone shares slices with the original")
	}
	if len(s.Calendar.CompletionHistory) != 1 || len(s.TaskCategories) != 6 {
		t.Error("Clone shares maps with the original")
	}
}

func TestColorName(t *testing.T) {
	for color, want := range map[string]string{"#00FF88": "green", "#FF4757": "red", "#FFA502": "yellow", "#123456": "green"} {
		if got := ColorName(color); got != want {
			t.Errorf("ColorName(%q) = %q, want %q", color, got, want)
		}
	}
}
