package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/google/uuid"

	"github.com/julianstephens/dawg/internal/config"
	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/tui/components/calendar"
	"github.com/julianstephens/dawg/internal/tui/components/tasklist"
	"github.com/julianstephens/dawg/internal/tui/hold"
)

type SessionState int

const (
	StateTasks SessionState = iota
	StateSkills
	StateCalendar
	StateProfile
	StateEditing
	StateConfirmDelete
)

const tabCount = 4

var tabTitles = []string{"Tasks", "Skills", "Calendar", "Profile"}

type TaskFormModel struct {
	Text     string
	Category string
	Points   int
}

// notificationMsg carries one engine notification into the event loop.
type notificationMsg engine.Notification

type dismissMsg struct {
	id uuid.UUID
}

type refreshMsg time.Time

type Model struct {
	engine   *engine.Engine
	sink     *engine.ChannelSink
	snapshot *models.State
	now      func() time.Time

	state      SessionState
	keys       KeyMap
	help       help.Model
	taskList   tasklist.Model
	calendar   calendar.Model
	hold       hold.Model
	holdBar    progress.Model
	bar        progress.Model
	form       *huh.Form
	taskForm   *TaskFormModel
	editingID  *int
	deleteTask *models.Task
	active     []engine.Notification
	status     string
	quitting   bool
	width      int
	height     int
}

// NewModel renders eng and listens for its notifications on sink. The sink must be
// registered with the engine by the caller.
func NewModel(eng *engine.Engine, sink *engine.ChannelSink, settings config.Settings) Model {
	snap := eng.Snapshot()
	m := Model{
		engine:   eng,
		sink:     sink,
		snapshot: snap,
		now:      time.Now,
		state:    StateTasks,
		keys:     DefaultKeyMap(),
		help:     help.New(),
		taskList: tasklist.New(snap.Tasks, 0, 0),
		calendar: calendar.New(0, 0),
		hold:     hold.New(settings.HoldDuration, settings.HoldRepeatDelay, settings.HoldReleaseWindow),
		holdBar:  progress.New(progress.WithDefaultGradient(), progress.WithoutPercentage()),
		bar:      progress.New(progress.WithSolidFill("#00FF88")),
	}
	m.refresh()
	return m
}

// refresh pulls a fresh snapshot. Timers inside the engine change state on their own,
// so this runs on every notification and on a slow tick.
func (m *Model) refresh() {
	m.snapshot = m.engine.Snapshot()
	m.taskList.SetTasks(m.snapshot.Tasks)
	m.calendar.SetCalendar(m.snapshot.Calendar, daysIn(m.now()))
}

func daysIn(t time.Time) int {
	return time.Date(t.Year(), t.Month()+1, 0, 0, 0, 0, 0, t.Location()).Day()
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateTasks {
		keys = append(keys, m.keys.Hold, m.keys.Add, m.keys.Edit, m.keys.Delete)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	navigation := []key.Binding{m.keys.Up, m.keys.Down, m.keys.Left, m.keys.Right}

	var actions []key.Binding
	if m.state == StateTasks {
		actions = []key.Binding{m.keys.Hold, m.keys.Add, m.keys.Edit, m.keys.Delete}
	}
	return [][]key.Binding{global, navigation, actions}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForNotification(m.sink), refreshTick())
}

func waitForNotification(sink *engine.ChannelSink) tea.Cmd {
	return func() tea.Msg {
		n, ok := <-sink.C
		if !ok {
			return nil
		}
		return notificationMsg(n)
	}
}

func refreshTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return refreshMsg(t)
	})
}

func dismissAfter(n engine.Notification) tea.Cmd {
	return tea.Tick(n.DisplayFor, func(time.Time) tea.Msg {
		return dismissMsg{id: n.ID}
	})
}
