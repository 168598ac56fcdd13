// Package hold turns repeated key presses into a press-and-hold gesture.
//
// A terminal has no key-up event. Holding a key makes the terminal repeat it, so the
// gesture stays alive while repeats keep arriving and is cancelled once they stop for
// longer than the release window. Terminals wait before the first repeat (X11 defaults
// to 660ms), so until one arrives the longer repeat delay applies instead.
package hold

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// FrameInterval is how often an active hold samples its progress.
const FrameInterval = time.Second / 60

// TickMsg drives an active hold. Ticks from an earlier hold are ignored.
type TickMsg struct {
	gen int
}

// CompleteMsg is sent once when a hold reaches full progress.
type CompleteMsg struct {
	TaskID int
}

type Model struct {
	duration    time.Duration
	repeatDelay time.Duration
	window      time.Duration
	now         func() time.Time

	active     bool
	taskID     int
	started    time.Time
	lastRepeat time.Time
	repeated   bool
	progress   float64
	gen        int
}

// New builds a hold that completes after duration. repeatDelay bounds the wait for the
// first key repeat, releaseWindow the gap between later ones.
func New(duration, repeatDelay, releaseWindow time.Duration) Model {
	return Model{duration: duration, repeatDelay: max(repeatDelay, releaseWindow), window: releaseWindow, now: time.Now}
}

// WithClock replaces the time source.
func (m Model) WithClock(now func() time.Time) Model {
	m.now = now
	return m
}

// Press registers a key event for taskID. The first press starts a hold, later
// presses for the same task keep it alive. A press for another task restarts.
func (m Model) Press(taskID int) (Model, tea.Cmd) {
	now := m.now()
	if m.active && m.taskID == taskID {
		m.lastRepeat = now
		m.repeated = true
		return m, nil
	}
	m.active = true
	m.taskID = taskID
	m.started = now
	m.lastRepeat = now
	m.repeated = false
	m.progress = 0
	m.gen++
	return m, m.tick()
}

// Cancel drops the hold without completing anything.
func (m Model) Cancel() Model {
	m.active = false
	m.progress = 0
	m.gen++
	return m
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	tick, ok := msg.(TickMsg)
	if !ok || !m.active || tick.gen != m.gen {
		return m, nil
	}

	now := m.now()
	limit := m.window
	if !m.repeated {
		limit = m.repeatDelay
	}
	if now.Sub(m.lastRepeat) > limit {
		return m.Cancel(), nil
	}

	m.progress = min(1, float64(now.Sub(m.started))/float64(m.duration))
	if m.progress < 1 {
		return m, m.tick()
	}

	id := m.taskID
	m.active = false
	m.gen++
	return m, func() tea.Msg { return CompleteMsg{TaskID: id} }
}

func (m Model) tick() tea.Cmd {
	gen := m.gen
	return tea.Tick(FrameInterval, func(time.Time) tea.Msg {
		return TickMsg{gen: gen}
	})
}

func (m Model) Active() bool { return m.active }

func (m Model) TaskID() int { return m.taskID }

// Progress is elapsed / duration in [0, 1] for the active hold.
func (m Model) Progress() float64 {
	if !m.active {
		return 0
	}
	return m.progress
}
