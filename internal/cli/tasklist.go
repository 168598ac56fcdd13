package cli

import (
	"fmt"

	"github.com/julianstephens/dawg/internal/scheduler"
)

type TaskListCmd struct {
	Pending bool `help:"Show only tasks not yet completed today."`
}

func (c *TaskListCmd) Run(ctx *Context) error {
	eng, err := ctx.OpenEngine(scheduler.Immediate{})
	if err != nil {
		return err
	}
	defer eng.Close()

	s := eng.Snapshot()
	if len(s.Tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	fmt.Printf("Tasks (%d/%d completed today):\n", s.Progress.Current, s.Progress.Total)
	for _, task := range s.Tasks {
		if c.Pending && task.Completed {
			continue
		}
		fmt.Println(formatTask(task))
	}
	return nil
}
