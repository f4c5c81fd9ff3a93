package plans

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
)

type PlanFinishCmd struct{}

func (c *PlanFinishCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	p := ctx.Planner()
	day := p.EnsureDay(today)
	if err := p.FinishPlanning(day); err != nil {
		return err
	}
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Great! Plan for %s locked in with %d item(s).\n", day.Date, len(day.Items))
	return nil
}
