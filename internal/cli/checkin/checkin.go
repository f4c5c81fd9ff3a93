package checkin

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/utils"
)

type CheckinCmd struct{}

// Run walks every planned item through an interactive evening check-in and
// submits the day. Nothing is persisted until validation of the whole day
// passes.
func (c *CheckinCmd) Run(ctx *cli.Context) error {
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

	for i := range day.Items {
		item := &day.Items[i]
		fmt.Printf("\n[%d/%d] %s\n", i+1, len(day.Items), cli.FormatItem(*item))

		status, err := askStatus(item.Status)
		if err != nil {
			return fmt.Errorf("interactive form error: %w", err)
		}
		if err := p.SetItemStatus(day, item.ID, status); err != nil {
			return err
		}

		switch status {
		case constants.StatusPartial:
			progress, err := askProgress(item.PartialProgress)
			if err != nil {
				return fmt.Errorf("interactive form error: %w", err)
			}
			if err := p.SetPartialProgress(day, item.ID, progress); err != nil {
				return err
			}
		case constants.StatusNotYet, constants.StatusSkipped:
			reasons, note, err := askJustification()
			if err != nil {
				return fmt.Errorf("interactive form error: %w", err)
			}
			item.Reasons = nil
			for _, r := range reasons {
				if err := p.AddReason(day, item.ID, r); err != nil {
					return err
				}
			}
			if err := p.SetNote(day, item.ID, note); err != nil {
				return err
			}
		}
	}

	var freeTomorrow bool
	confirm := huh.NewForm(huh.NewGroup(
		huh.NewConfirm().
			Title("Declare today a planned rest day?").
			Description("A rest day keeps your streak alive regardless of the completion ratio.").
			Value(&freeTomorrow),
	))
	if err := confirm.Run(); err != nil {
		return fmt.Errorf("interactive form error: %w", err)
	}
	day.FreeTomorrow = freeTomorrow

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

	state := ctx.Store.State()
	fmt.Printf("\nCheck-in saved. Nice work!\n")
	fmt.Printf("Score: %.1f/%d (%.0f%%) — streak is now %d 🔥\n",
		day.Summary.WeightedScore, day.Summary.TotalItems, day.Summary.Ratio*100, state.Streak)
	return nil
}

func askStatus(current constants.ItemStatus) (constants.ItemStatus, error) {
	status := current
	if status == "" {
		status = constants.StatusSuccess
	}
	form := huh.NewForm(huh.NewGroup(
		huh.NewSelect[constants.ItemStatus]().
			Title("How did it go?").
			Options(
				huh.NewOption("Success", constants.StatusSuccess),
				huh.NewOption("Partial", constants.StatusPartial),
				huh.NewOption("Not yet", constants.StatusNotYet),
				huh.NewOption("Skipped", constants.StatusSkipped),
			).
			Value(&status),
	))
	if err := form.Run(); err != nil {
		return "", err
	}
	return status, nil
}

func askProgress(current int) (int, error) {
	if current <= 0 || current > 100 {
		current = constants.DefaultPartialProgress
	}
	value := strconv.Itoa(current)
	form := huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("How far did you get? (0-100)").
			Validate(func(s string) error {
				n, err := strconv.Atoi(s)
				if err != nil || n < 0 || n > 100 {
					return fmt.Errorf("enter a number between 0 and 100")
				}
				return nil
			}).
			Value(&value),
	))
	if err := form.Run(); err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func askJustification() ([]string, string, error) {
	var reasons []string
	var note string

	options := make([]huh.Option[string], 0, len(constants.SuggestedReasons))
	for _, r := range constants.SuggestedReasons {
		options = append(options, huh.NewOption(r, r))
	}

	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[string]().
			Title("Why not? (pick any that apply)").
			Options(options...).
			Value(&reasons),
		huh.NewInput().
			Title("Anything else? (note, optional unless no reason picked)").
			Value(&note),
	))
	if err := form.Run(); err != nil {
		return nil, "", err
	}
	return reasons, note, nil
}
