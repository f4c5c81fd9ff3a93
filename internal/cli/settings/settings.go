package settings

import (
	"fmt"
	"strconv"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/utils"
)

type SettingsCmd struct {
	Show ShowCmd `cmd:"" help:"Show current settings." default:"1"`
	Set  SetCmd  `cmd:"" help:"Set a settings value."`
}

type ShowCmd struct{}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	s := ctx.Store.State().Settings
	fmt.Printf("%s: %s\n", constants.SettingMorningHour, s.MorningHour)
	fmt.Printf("%s: %d\n", constants.SettingMinTasks, s.MinTasks)
	fmt.Printf("%s: %g\n", constants.SettingStreakThreshold, s.StreakThreshold)
	fmt.Printf("%s: %t\n", constants.SettingCalendarLinks, s.CalendarLinks)
	fmt.Printf("%s: %s\n", constants.SettingTimezone, s.Timezone)
	return nil
}

type SetCmd struct {
	Key   string `arg:"" help:"Settings key."`
	Value string `arg:"" help:"New value."`
}

func (c *SetCmd) Run(ctx *cli.Context) error {
	s := &ctx.Store.State().Settings

	switch c.Key {
	case constants.SettingMorningHour:
		if !utils.ValidateTimeFormat(c.Value) {
			return fmt.Errorf("invalid time format (expected HH:MM)")
		}
		s.MorningHour = c.Value
	case constants.SettingMinTasks:
		n, err := strconv.Atoi(c.Value)
		if err != nil || n < 1 {
			return fmt.Errorf("%s must be a positive integer", constants.SettingMinTasks)
		}
		s.MinTasks = n
	case constants.SettingStreakThreshold:
		f, err := strconv.ParseFloat(c.Value, 64)
		if err != nil || f < 0 || f > 1 {
			return fmt.Errorf("%s must be a number between 0 and 1", constants.SettingStreakThreshold)
		}
		s.StreakThreshold = f
	case constants.SettingCalendarLinks:
		b, err := strconv.ParseBool(c.Value)
		if err != nil {
			return fmt.Errorf("%s must be true or false", constants.SettingCalendarLinks)
		}
		s.CalendarLinks = b
	case constants.SettingTimezone:
		if !utils.ValidateTimezone(c.Value) {
			return fmt.Errorf("invalid timezone %q", c.Value)
		}
		s.Timezone = c.Value
	default:
		return fmt.Errorf("unknown settings key %q", c.Key)
	}

	if err := ctx.SaveState(); err != nil {
		return err
	}
	fmt.Printf("Set %s = %s\n", c.Key, c.Value)
	return nil
}
