package cli

import (
	"fmt"

	"github.com/julianstephens/dawg/internal/scheduler"
)

type RanksCmd struct{}

func (c *RanksCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	s := eng.Snapshot()
	fmt.Printf("Rank ladder (current streak: %d days):\n\n", s.Calendar.ConsecutiveDays)
	for _, e := range eng.Ladder().Entries() {
		marker := "  "
		switch {
		case e.Level == s.Level.Number:
			marker = "▶ "
		case e.DaysRequired <= s.Calendar.ConsecutiveDays:
			marker = "✓ "
		}
		fmt.Printf("%s%d  %s %-8s %-16s %3d days\n", marker, e.Level, e.Emoji, e.Name, e.Title, e.DaysRequired)
	}
	return nil
}
