package tasks

import (
	"fmt"
	"strings"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/utils"
)

type TaskAddCmd struct {
	Title    string `arg:"" help:"Task title."`
	Duration int    `short:"d" help:"Default duration in minutes." default:"30"`
	Due      string `help:"Due date (YYYY-MM-DD)."`
	Tags     string `short:"t" help:"Comma-separated tags."`
}

func (c *TaskAddCmd) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return fmt.Errorf("task title cannot be empty")
	}
	if c.Duration <= 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	if c.Due != "" && !utils.ValidateDateFormat(c.Due) {
		return fmt.Errorf("invalid due date format (expected %s)", constants.DateFormat)
	}
	return nil
}

func (c *TaskAddCmd) Run(ctx *cli.Context) error {
	var tags []string
	if c.Tags != "" {
		tags = strings.Split(c.Tags, ",")
	}

	task, err := ctx.Planner().AddTask(c.Title, c.Duration, c.Due, tags)
	if err != nil {
		return err
	}
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Added task %q (%dm) with ID %s\n", task.Title, task.DurationMin, task.ID)
	return nil
}
