package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/julianstephens/dawg/internal/engine"
	"github.com/julianstephens/dawg/internal/scheduler"
)

type TaskAddCmd struct {
	Text     string `arg:"" help:"Task text."`
	Category string `short:"c" help:"Skill category (PHYSICAL, SOCIAL, DISCIPLINE, MENTAL, INTELLECT, AMBITION)." default:"PHYSICAL"`
	Points   int    `short:"p" help:"XP awarded on completion (6 easy, 12 medium, 18 hard)." default:"6"`
}

func (c *TaskAddCmd) Validate() error {
	if c.Points <= 0 {
		return fmt.Errorf("points must be positive")
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	task, err := eng.UpsertTask(engine.TaskInput{
		Text:     c.Text,
		Category: strings.ToUpper(strings.TrimSpace(c.Category)),
		Points:   c.Points,
	})
	if err != nil {
		return err
	}

	fmt.Printf("✓ Added task %d: %s (%s, +%d XP)\n", task.ID, task.Text, task.Category, task.Points)
	return nil
}

type TaskEditCmd struct {
	ID       int    `arg:"" help:"ID of the task to edit."`
	Text     string `short:"t" help:"New task text."`
	Category string `short:"c" help:"New skill category."`
	Points   int    `short:"p" help:"New XP value."`
}

func (c *TaskEditCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	// unset flags keep the current values
	in := engine.TaskInput{ID: &c.ID}
	if s := eng.Snapshot(); s.FindTask(c.ID) != -1 {
		t := s.Tasks[s.FindTask(c.ID)]
		in.Text, in.Category, in.Points = t.Text, t.Category, t.Points
	}
	if c.Text != "" {
		in.Text = c.Text
	}
	if c.Category != "" {
		in.Category = strings.ToUpper(strings.TrimSpace(c.Category))
	}
	if c.Points != 0 {
		in.Points = c.Points
	}

	task, err := eng.UpsertTask(in)
	if err != nil {
		return err
	}

	fmt.Printf("✓ Updated task %d: %s (%s, +%d XP)\n", task.ID, task.Text, task.Category, task.Points)
	return nil
}

type TaskDeleteCmd struct {
	ID  int  `arg:"" help:"ID of the task to delete."`
	Yes bool `short:"y" help:"Skip the confirmation prompt."`
}

func (c *TaskDeleteCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	s := eng.Snapshot()
	if i := s.FindTask(c.ID); i != -1 && !s.Tasks[i].IsDefault && !c.Yes {
		fmt.Printf("Delete task %d: %s? [y/N]: ", c.ID, s.Tasks[i].Text)
		if !confirm() {
			fmt.Println("Delete cancelled.")
			return nil
		}
	}

	if err := eng.DeleteTask(c.ID); err != nil {
		return err
	}
	fmt.Printf("✓ Deleted task %d\n", c.ID)
	return nil
}

// confirm reads a y/yes answer from stdin.
func confirm() bool {
	response, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	response = strings.TrimSpace(strings.ToLower(response))
	return response == "y" || response == "yes"
}
