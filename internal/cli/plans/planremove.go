package plans

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
)

type PlanRemoveCmd struct {
	ItemID string `arg:"" help:"Plan item to remove from today."`
}

func (c *PlanRemoveCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	p := ctx.Planner()
	day := p.EnsureDay(today)
	if err := p.RemoveItem(day, c.ItemID); err != nil {
		return err
	}
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Removed item %s\n", c.ItemID)
	if !day.Planned && len(day.Items) > 0 {
		fmt.Println("The plan dropped below the minimum size and was unlocked; finish planning again.")
	}
	return nil
}
