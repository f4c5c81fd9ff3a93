package cli

import (
	"fmt"

	"github.com/mklein/gateplan/internal/calendar"
	"github.com/mklein/gateplan/internal/utils"
)

type ExportCmd struct {
	ItemID string `arg:"" optional:"" help:"Plan item to export; exports every item of the day when omitted."`
	Date   string `short:"D" help:"Day to export (YYYY-MM-DD). Defaults to today."`
}

// Run prints Google Calendar template links for planned items.
func (c *ExportCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	if !state.Settings.CalendarLinks {
		return fmt.Errorf("calendar links are disabled; enable with 'gateplan settings set %s true'", "calendar_links")
	}

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

	loc, err := utils.LoadLocation(state.Settings.Timezone)
	if err != nil {
		return err
	}

	day := ctx.Planner().EnsureDay(date)
	if len(day.Items) == 0 {
		fmt.Println("Nothing planned for", date)
		return nil
	}

	for _, it := range day.Items {
		if c.ItemID != "" && it.ID != c.ItemID {
			continue
		}
		link, err := calendar.EventLink(it, date, loc)
		if err != nil {
			return fmt.Errorf("failed to build link for %q: %w", it.Title, err)
		}
		fmt.Printf("%s\n  %s\n", FormatItem(it), link)
	}
	return nil
}
