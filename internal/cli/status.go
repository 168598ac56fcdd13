package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/dawg/internal/models"
	"github.com/julianstephens/dawg/internal/scheduler"
)

var (
	rankStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(16)
)

type StatusCmd struct{}

func (c *StatusCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	s := eng.Snapshot()
	fmt.Println(rankStyle.Render(fmt.Sprintf("%s %s, %s", s.Level.Emoji, s.Level.Animal, s.Level.Title)))
	fmt.Println()

	row := func(label string, value any) {
		fmt.Printf("%s%v\n", labelStyle.Render(label), value)
	}
	row("Level", s.Level.Number)
	row("Streak", fmt.Sprintf("%d days", s.Calendar.ConsecutiveDays))
	if next, ok := eng.Ladder().Next(s.Level.Number); ok {
		row("Next rank", fmt.Sprintf("%s %s at %d days", next.Emoji, next.Name, next.DaysRequired))
	}
	row("Today", fmt.Sprintf("%d/%d tasks", s.Progress.Current, s.Progress.Total))
	row("Total XP", s.UserProfile.TotalXP)
	row("Overall rating", models.OverallRating(s.Skills))

	fmt.Println()
	for _, sk := range s.Skills {
		filled := min(max(sk.Level, 0), 100) / 5
		fmt.Printf("  %-11s %3d %s\n", sk.Name, sk.Level, strings.Repeat("█", filled)+strings.Repeat("░", 20-filled))
	}
	return nil
}
