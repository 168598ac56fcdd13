package tui

import (
	"slices"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/dawg/internal/constants"
	"github.com/julianstephens/dawg/internal/engine"
	dawgerrors "github.com/julianstephens/dawg/internal/errors"
	"github.com/julianstephens/dawg/internal/logger"
	"github.com/julianstephens/dawg/internal/tui/components/tasklist"
	"github.com/julianstephens/dawg/internal/tui/hold"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		barWidth := min(max(msg.Width-8, 10), 60)
		m.holdBar.Width = barWidth
		m.bar.Width = barWidth
		m.taskList.SetSize(msg.Width-4, max(msg.Height-12, 3))
		m.calendar.SetSize(msg.Width-4, max(msg.Height-6, 3))
		return m, nil

	case notificationMsg:
		n := engine.Notification(msg)
		m.active = append(m.active, n)
		m.refresh()
		return m, tea.Batch(waitForNotification(m.sink), dismissAfter(n))

	case dismissMsg:
		m.active = slices.DeleteFunc(m.active, func(n engine.Notification) bool {
			return n.ID == msg.id
		})
		return m, nil

	case refreshMsg:
		m.refresh()
		return m, refreshTick()

	case hold.TickMsg:
		var cmd tea.Cmd
		m.hold, cmd = m.hold.Update(msg)
		return m, cmd

	case hold.CompleteMsg:
		res := m.engine.CompleteTask(msg.TaskID)
		logger.Debug("Hold completed", "task", msg.TaskID, "ok", res.OK)
		m.refresh()
		return m, nil
	}

	switch m.state {
	case StateEditing:
		return m.updateForm(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	}

	if handled, cmd := m.handleTaskMessages(msg); handled {
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab, m.keys.Right):
			m.hold = m.hold.Cancel()
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab, m.keys.Left):
			m.hold = m.hold.Cancel()
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case m.state == StateTasks && key.Matches(msg, m.keys.Hold):
			task, ok := m.taskList.Selected()
			if !ok || task.Completed {
				return m, nil
			}
			var cmd tea.Cmd
			m.hold, cmd = m.hold.Press(task.ID)
			return m, cmd
		}
		m.status = ""
	}

	var cmd tea.Cmd
	switch m.state {
	case StateTasks:
		m.taskList, cmd = m.taskList.Update(msg)
	case StateCalendar:
		m.calendar, cmd = m.calendar.Update(msg)
	}
	return m, cmd
}

// handleTaskMessages reacts to the task list's add, edit and delete requests.
func (m *Model) handleTaskMessages(msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tasklist.AddTaskMsg:
		m.editingID = nil
		m.taskForm = &TaskFormModel{
			Category: constants.CategoryPhysical,
			Points:   constants.DifficultyPoints[0],
		}
		m.form = NewTaskForm(m.taskForm)
		m.state = StateEditing
		return true, m.form.Init()

	case tasklist.EditTaskMsg:
		if msg.Task.IsDefault {
			m.status = dawgerrors.Describe(engine.ErrImmutable)
			return true, nil
		}
		id := msg.Task.ID
		m.editingID = &id
		m.taskForm = &TaskFormModel{
			Text:     msg.Task.Text,
			Category: msg.Task.Category,
			Points:   msg.Task.Points,
		}
		m.form = NewTaskForm(m.taskForm)
		m.state = StateEditing
		return true, m.form.Init()

	case tasklist.DeleteTaskMsg:
		if msg.Task.IsDefault {
			m.status = dawgerrors.Describe(engine.ErrImmutable)
			return true, nil
		}
		task := msg.Task
		m.deleteTask = &task
		m.state = StateConfirmDelete
		return true, nil
	}
	return false, nil
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateTasks
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		_, err := m.engine.UpsertTask(engine.TaskInput{
			ID:       m.editingID,
			Text:     m.taskForm.Text,
			Category: m.taskForm.Category,
			Points:   m.taskForm.Points,
		})
		if err != nil {
			m.status = dawgerrors.Describe(err)
		}
		m.refresh()
		m.state = StateTasks
	case huh.StateAborted:
		m.state = StateTasks
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if m.deleteTask != nil {
				if err := m.engine.DeleteTask(m.deleteTask.ID); err != nil {
					m.status = dawgerrors.Describe(err)
				}
				m.refresh()
			}
			m.deleteTask = nil
			m.state = StateTasks
		case "n", "N", "esc":
			m.deleteTask = nil
			m.state = StateTasks
		}
	}
	return m, nil
}
