package calendar

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dawg/internal/models"
)

const daysPerRow = 7

var (
	monthStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	dayStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(4).
			Align(lipgloss.Right)

	completedStyle = dayStyle.
			Foreground(lipgloss.Color("#00FF88")).
			Bold(true)

	todayStyle = dayStyle.
			Foreground(lipgloss.Color("252")).
			Underline(true).
			Bold(true)

	streakStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)
)

type Model struct {
	viewport viewport.Model
	calendar models.Calendar
	days     int
	width    int
	height   int
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height), days: 31}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height
	m.Render()
}

// SetCalendar shows cal as a month of daysInMonth days.
func (m *Model) SetCalendar(cal models.Calendar, daysInMonth int) {
	m.calendar = cal
	if daysInMonth > 0 {
		m.days = daysInMonth
	}
	m.Render()
}

func (m *Model) Render() {
	m.viewport.SetContent(Grid(m.calendar, m.days))
}

// Grid renders the month with completed days highlighted and today underlined.
func Grid(cal models.Calendar, daysInMonth int) string {
	var b strings.Builder
	b.WriteString(monthStyle.Render(cal.CurrentMonth))
	b.WriteString("\n\n")

	for day := 1; day <= daysInMonth; day++ {
		label := fmt.Sprintf("%d", day)
		switch {
		case slices.Contains(cal.CompletedDays, day):
			b.WriteString(completedStyle.Render(label + "✓"))
		case day == cal.CurrentDate:
			b.WriteString(todayStyle.Render(label))
		default:
			b.WriteString(dayStyle.Render(label))
		}
		if day%daysPerRow == 0 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n\n")
	b.WriteString(streakStyle.Render(fmt.Sprintf("🔥 %d day streak", cal.ConsecutiveDays)))
	b.WriteString(fmt.Sprintf("\n%d days completed this month, %d recorded in total\n",
		len(cal.CompletedDays), len(cal.CompletionHistory)))
	return b.String()
}
