package plans

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/planner"
	"github.com/mklein/gateplan/internal/utils"
)

type DayCmd struct {
	Date string `arg:"" optional:"" help:"Day to show (YYYY-MM-DD). Defaults to today."`
}

func (c *DayCmd) Run(ctx *cli.Context) error {
	date := c.Date
	if date == "" {
		var err error
		if date, err = ctx.Today(); err != nil {
			return err
		}
	}
	if !utils.ValidateDateFormat(date) {
		return fmt.Errorf("invalid date %q (expected YYYY-MM-DD)", date)
	}

	day := ctx.Planner().EnsureDay(date)

	status := "unplanned"
	if day.Planned {
		status = "planned"
	}
	if day.Checked {
		status = "checked"
	}
	fmt.Printf("%s — %s", day.Date, status)
	if day.FreeTomorrow {
		fmt.Print(" (rest day)")
	}
	fmt.Println()

	if len(day.Items) == 0 {
		fmt.Println("No tasks planned. Go plan your morning.")
		return nil
	}

	for _, it := range day.Items {
		fmt.Printf("  %s  %s  %s\n", it.ID, cli.FormatItem(it), cli.FormatItemStatus(it.Status))
		for _, reason := range it.Reasons {
			fmt.Printf("      reason: %s\n", reason)
		}
		if it.Note != "" {
			fmt.Printf("      note: %s\n", it.Note)
		}
	}

	if day.Summary != nil {
		fmt.Printf("Summary: %.1f/%d done (%.0f%%), checked in at %s\n",
			day.Summary.WeightedScore, day.Summary.TotalItems,
			day.Summary.Ratio*100, day.Summary.CompletedAt.Format("15:04"))
	} else if day.Checked {
		fmt.Println("Checked in.")
	} else {
		completion := planner.CalculateCompletion(day.Items)
		fmt.Printf("Progress so far: %.1f/%d (%.0f%%)\n",
			completion.Weighted, completion.Total, completion.Ratio()*100)
	}
	return nil
}
