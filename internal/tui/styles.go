package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dawg/internal/constants"
)

// The palette reuses the category colors so XP popups and the chrome agree.
var (
	accent  = lipgloss.Color(constants.ColorAmber)
	success = lipgloss.Color(constants.ColorGreen)
	alert   = lipgloss.Color(constants.ColorRed)
	dim     = lipgloss.Color("241")

	activeTabStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("232")).Background(accent).Padding(0, 1).Bold(true)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(dim).Padding(0, 1)

	headerStyle  = lipgloss.NewStyle().Foreground(success).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(dim)
	dangerStyle  = lipgloss.NewStyle().Foreground(alert).Bold(true)
	warningStyle = lipgloss.NewStyle().Foreground(accent).Italic(true)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(accent).
			Padding(1, 6).
			Bold(true).
			Align(lipgloss.Center)

	docStyle = lipgloss.NewStyle().Padding(1, 2)
)
