package tasks

import (
	"fmt"
	"strings"

	"github.com/mklein/gateplan/internal/cli"
)

type TaskListCmd struct{}

func (c *TaskListCmd) Run(ctx *cli.Context) error {
	tasks := ctx.Store.State().Tasks
	if len(tasks) == 0 {
		fmt.Println("No tasks in the pool. Add one with 'gateplan task add <title>'.")
		return nil
	}

	for _, t := range tasks {
		line := fmt.Sprintf("%s  %s (%dm)", t.ID, t.Title, t.DurationMin)
		if t.Due != "" {
			line += fmt.Sprintf("  due %s", t.Due)
		}
		if len(t.Tags) > 0 {
			line += "  #" + strings.Join(t.Tags, " #")
		}
		fmt.Println(line)
	}
	return nil
}
