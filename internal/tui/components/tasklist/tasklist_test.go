package tasklist

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/julianstephens/dawg/internal/models"
)

func sampleTasks() []models.Task {
	return []models.Task{
		{ID: 1, Number: "01", Text: "WAKE UP AT 6AM", Category: "DISCIPLINE", Points: 12, IsDefault: true},
		{ID: 6, Number: "02", Text: "READ 10 PAGES", Category: "MENTAL", Points: 12, Completed: true},
	}
}

func TestItemRendering(t *testing.T) {
	tasks := sampleTasks()
	if got, want := (Item{Task: tasks[0]}).Title(), "[ ] 01 WAKE UP AT 6AM"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if got, want := (Item{Task: tasks[1]}).Title(), "[✓] 02 READ 10 PAGES"; got != want {
		t.Errorf("Title() = %q, want %q", got, want)
	}
	if got, want := (Item{Task: tasks[0]}).Description(), "+12 XP | DISCIPLINE | default"; got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestKeysEmitMessages(t *testing.T) {
	m := New(sampleTasks(), 80, 20)

	tests := []struct {
		key  string
		want func(tea.Msg) bool
	}{
		{"a", func(msg tea.Msg) bool { _, ok := msg.(AddTaskMsg); return ok }},
		{"e", func(msg tea.Msg) bool { e, ok := msg.(EditTaskMsg); return ok && e.Task.ID == 1 }},
		{"d", func(msg tea.Msg) bool { d, ok := msg.(DeleteTaskMsg); return ok && d.Task.ID == 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(tt.key)})
			if cmd == nil {
				t.Fatal("expected a command")
			}
			if msg := cmd(); !tt.want(msg) {
				t.Errorf("unexpected message %#v", msg)
			}
		})
	}
}

func TestSelectedFollowsCursor(t *testing.T) {
	m := New(sampleTasks(), 80, 20)
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})

	task, ok := m.Selected()
	if !ok || task.ID != 6 {
		t.Errorf("Selected() = %v, %v; want task 6", task.ID, ok)
	}

	m.SetTasks(nil)
	if _, ok := m.Selected(); ok {
		t.Error("expected no selection on an empty list")
	}
}
