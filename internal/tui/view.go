package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/models"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateTasks:
		content = m.viewTasks()
	case StateSkills:
		content = m.viewSkills()
	case StateCalendar:
		content = docStyle.Render(m.calendar.View())
	case StateProfile:
		content = m.viewProfile()
	case StateEditing:
		content = docStyle.Render(m.form.View())
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	}

	parts := []string{m.viewTabs()}
	if len(m.active) > 0 {
		parts = append(parts, renderNotification(m.active[len(m.active)-1]))
	}
	parts = append(parts, content)
	if m.status != "" {
		parts = append(parts, warningStyle.Render(m.status))
	}
	parts = append(parts, m.help.View(m))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m Model) viewTabs() string {
	current := m.state
	if current >= tabCount {
		current = StateTasks
	}
	var tabs []string
	for i, title := range tabTitles {
		if current == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewTasks() string {
	s := m.snapshot
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s  %s", s.Level.Emoji, s.Level.Animal, s.Level.Title)))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Today %d/%d  ", s.Progress.Current, s.Progress.Total))
	b.WriteString(m.bar.ViewAs(ratio(s.Progress.Current, s.Progress.Total)))
	b.WriteString("\n")

	if m.hold.Active() {
		b.WriteString(mutedStyle.Render("Hold to complete  "))
		b.WriteString(m.holdBar.ViewAs(m.hold.Progress()))
	}
	b.WriteString("\n")
	b.WriteString(m.taskList.View())

	return docStyle.Render(b.String())
}

func (m Model) viewSkills() string {
	s := m.snapshot
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("Overall rating %d", models.OverallRating(s.Skills))))
	b.WriteString("\n\n")
	for _, skill := range s.Skills {
		b.WriteString(fmt.Sprintf("%-11s %3d ", skill.Name, skill.Level))
		b.WriteString(m.bar.ViewAs(ratio(skill.Level, 100)))
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewProfile() string {
	s := m.snapshot
	p := s.UserProfile
	var b strings.Builder

	b.WriteString(headerStyle.Render(fmt.Sprintf("%s %s", p.Avatar, p.Name)))
	b.WriteString("\n\n")
	b.WriteString(fmt.Sprintf("Rank            %d (%s)\n", p.CurrentLevel, s.Level.Animal))
	b.WriteString(fmt.Sprintf("Total XP        %d\n", p.TotalXP))
	b.WriteString(fmt.Sprintf("Current streak  %d\n", p.CurrentStreak))
	b.WriteString(fmt.Sprintf("Longest streak  %d\n", p.LongestStreak))
	b.WriteString(fmt.Sprintf("Completion      %d%%\n\n", p.CompletionRate))

	l := m.engine.Ladder()
	if next, ok := l.Next(s.Level.Number); ok {
		togo := max(next.DaysRequired-s.Calendar.ConsecutiveDays, 0)
		b.WriteString(fmt.Sprintf("Next: %s %s at %d days (%d to go)\n\n", next.Emoji, next.Name, next.DaysRequired, togo))
	} else {
		b.WriteString("Top rank reached\n\n")
	}

	for _, e := range l.Entries() {
		line := fmt.Sprintf("%d %s %-8s %-16s %3d days", e.Level, e.Emoji, e.Name, e.Title, e.DaysRequired)
		if e.Level == s.Level.Number {
			b.WriteString(headerStyle.Render("> " + line))
		} else {
			b.WriteString(mutedStyle.Render("  " + line))
		}
		b.WriteString("\n")
	}
	return docStyle.Render(b.String())
}

func (m Model) viewConfirmDelete() string {
	name := ""
	if m.deleteTask != nil {
		name = m.deleteTask.Text
	}
	return lipgloss.Place(m.width, max(m.height-4, 5),
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Are you sure you want to delete this task?"),
			name,
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func renderNotification(n engine.Notification) string {
	switch n.Kind {
	case engine.KindTaskCompleted:
		return overlayStyle.
			BorderForeground(lipgloss.Color(n.Color)).
			Foreground(lipgloss.Color(n.Color)).
			Render(fmt.Sprintf("+%d XP", n.Points))
	case engine.KindDayComplete:
		return overlayStyle.Render(fmt.Sprintf("DAY COMPLETE\n🔥 %d DAY STREAK", n.Streak))
	case engine.KindLevelUp:
		return overlayStyle.Render(fmt.Sprintf("LEVEL UP!\n%s\n%s\n%s", n.Emoji, n.AnimalName, n.Title))
	}
	return ""
}

func ratio(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return min(float64(n)/float64(total), 1)
}
