package cli

import (
	"fmt"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/scheduler"
)

type CompleteCmd struct {
	ID int `arg:"" help:"ID of the task to complete."`
}

func (c *CompleteCmd) Run(ctx *Context) error {
	var notes []engine.Notification
	eng, err := ctx.OpenEngine(scheduler.Immediate{}, engine.SinkFunc(func(n engine.Notification) {
		notes = append(notes, n)
	}))
	if err != nil {
		return err
	}
	defer eng.Close()

	res := eng.CompleteTask(c.ID)
	if !res.OK {
		if eng.Snapshot().FindTask(c.ID) == -1 {
			return fmt.Errorf("task %d not found", c.ID)
		}
		fmt.Printf("Task %d is already completed today\n", c.ID)
		return nil
	}

	fmt.Printf("✓ Task %d completed: +%d XP", c.ID, res.XPDelta)
	if res.SkillCategory != "" {
		fmt.Printf(", %s +%d", res.SkillCategory, res.SkillDelta)
	}
	fmt.Println()

	for _, n := range notes {
		switch n.Kind {
		case engine.KindDayComplete:
			fmt.Printf("🔥 Day complete! Streak: %d days\n", n.Streak)
		case engine.KindLevelUp:
			fmt.Printf("%s LEVEL UP! You are now %s, %s\n", n.Emoji, n.AnimalName, n.Title)
		}
	}
	return nil
}
