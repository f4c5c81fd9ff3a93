package checkin

import (
	"fmt"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
)

// MarkCmd is the non-interactive counterpart to the check-in form, intended
// for scripting. It only mutates one item; the day is submitted with
// 'gateplan checkin submit' or the interactive flow.
type MarkCmd struct {
	ItemID  string   `arg:"" help:"Plan item to mark."`
	Status  string   `arg:"" help:"Status: success|partial|not_yet|skipped."`
	Partial int      `short:"p" help:"Partial progress (0-100), for partial status." default:"-1"`
	Reason  []string `short:"r" help:"Justification reason; repeatable."`
	Note    string   `help:"Free-text note."`
}

func (c *MarkCmd) Validate() error {
	if !constants.IsValidStatus(constants.ItemStatus(c.Status)) {
		return fmt.Errorf("invalid status %q (expected success|partial|not_yet|skipped)", c.Status)
	}
	if c.Partial != -1 && (c.Partial < 0 || c.Partial > 100) {
		return fmt.Errorf("partial progress must be between 0 and 100")
	}
	return nil
}

func (c *MarkCmd) Run(ctx *cli.Context) error {
	today, err := ctx.Today()
	if err != nil {
		return err
	}

	p := ctx.Planner()
	day := p.EnsureDay(today)

	if err := p.SetItemStatus(day, c.ItemID, constants.ItemStatus(c.Status)); err != nil {
		return err
	}
	if c.Partial != -1 {
		if err := p.SetPartialProgress(day, c.ItemID, c.Partial); err != nil {
			return err
		}
	}
	for _, reason := range c.Reason {
		if err := p.AddReason(day, c.ItemID, reason); err != nil {
			return err
		}
	}
	if c.Note != "" {
		if err := p.SetNote(day, c.ItemID, c.Note); err != nil {
			return err
		}
	}
	if err := ctx.SaveState(); err != nil {
		return err
	}

	it := day.FindItem(c.ItemID)
	fmt.Printf("Marked %q %s\n", it.Title, cli.FormatItemStatus(it.Status))
	return nil
}
