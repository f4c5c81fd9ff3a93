package plans

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/planner"
	"github.com/mklein/gateplan/internal/utils"
)

type PlanAddCmd struct {
	TaskID   string `arg:"" help:"Task to schedule into today."`
	Start    string `short:"s" help:"Start time (HH:MM)."`
	Duration int    `short:"d" help:"Duration override in minutes."`
}

func (c *PlanAddCmd) Validate() error {
	if c.Start != "" && !utils.ValidateTimeFormat(c.Start) {
		return fmt.Errorf("invalid start time format (expected HH:MM)")
	}
	if c.Duration < 0 {
		return fmt.Errorf("duration must be greater than zero")
	}
	return nil
}

func (c *PlanAddCmd) Run(ctx *cli.Context) error {
	p := ctx.Planner()
	task, ok := p.FindTask(c.TaskID)
	if !ok {
		return fmt.Errorf("%w: %s", planner.ErrTaskNotFound, c.TaskID)
	}

	today, err := ctx.Today()
	if err != nil {
		return err
	}

	day := p.EnsureDay(today)
	item := p.AddItem(day, task, planner.ItemOverrides{
		Start:       c.Start,
		DurationMin: c.Duration,
	})
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Planned %s (item %s)\n", cli.FormatItem(item), item.ID)
	if !day.Planned {
		fmt.Println("Run 'gateplan plan finish' to lock the plan in.")
	}
	return nil
}
