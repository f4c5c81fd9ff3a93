package cli

import (
	"fmt"
)

type StreakCmd struct {
	History bool `short:"H" help:"Show the streak history log."`
	Limit   int  `short:"n" help:"Number of history rows to show." default:"14"`
}

func (c *StreakCmd) Run(ctx *Context) error {
	state := ctx.Store.State()

	fmt.Printf("Streak: %d 🔥 (best: %d)\n", state.Streak, state.BestStreak)
	if state.LastCheckinDate != "" {
		fmt.Printf("Last check-in: %s\n", state.LastCheckinDate)
	}

	if !c.History {
		return nil
	}

	history := state.StreakHistory
	if len(history) == 0 {
		fmt.Println("No check-ins recorded yet.")
		return nil
	}

	start := len(history) - c.Limit
	if start < 0 {
		start = 0
	}
	fmt.Println()
	for i := len(history) - 1; i >= start; i-- {
		e := history[i]
		fmt.Printf("  %s  streak %d\n", e.Date, e.Streak)
	}
	return nil
}
