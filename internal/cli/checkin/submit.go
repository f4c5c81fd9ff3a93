package checkin

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/utils"
)

// SubmitCmd submits today's check-in from statuses already set with 'mark'.
type SubmitCmd struct {
	FreeTomorrow bool `help:"Declare today a planned rest day."`
}

func (c *SubmitCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	p := ctx.Planner()
	day := p.EnsureDay(today)
	if len(day.Items) == 0 {
		fmt.Println("Nothing planned today.")
		return nil
	}
	if day.Checked {
		fmt.Println("Today is already checked in.")
		return nil
	}

	day.FreeTomorrow = c.FreeTomorrow

	now, err := utils.NowInTimezone(ctx.Store.State().Settings.Timezone)
	if err != nil {
		return err
	}
	if err := p.SubmitCheckin(day, now); err != nil {
		return err
	}
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Check-in saved: %.1f/%d (%.0f%%) — streak is now %d 🔥\n",
		day.Summary.WeightedScore, day.Summary.TotalItems, day.Summary.Ratio*100,
		ctx.Store.State().Streak)
	return nil
}
