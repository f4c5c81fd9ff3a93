package cli

import (
	"fmt"

	"github.com/mklein/gateplan/internal/planner"
	"github.com/mklein/gateplan/internal/utils"
)

type GateCmd struct {
	Quiet bool `short:"q" help:"Suppress output; only set the exit code."`
}

// Run evaluates the morning gate for today. Exit code 1 means the gate is
// active, which makes the command usable from shell prompts and scripts.
func (c *GateCmd) Run(ctx *Context) error {
	state := ctx.Store.State()
	now, err := utils.NowInTimezone(state.Settings.Timezone)
	if err != nil {
		return err
	}

	p := ctx.Planner()
	day := p.EnsureDay(utils.DateKey(now))
	gated := planner.ShouldGate(day, state.Settings, now)

	// EnsureDay may have created today's record; keep it.
	if err := ctx.SaveState(); err != nil {
		return err
	}

	if gated {
		if !c.Quiet {
			fmt.Printf("⛔ Planning gate is active: plan at least %d task(s) before doing anything else.\n", state.Settings.MinTasks)
			fmt.Println("   Run 'gateplan plan add <task-id>' and then 'gateplan plan finish'.")
		}
		return fmt.Errorf("gate active")
	}

	if !c.Quiet {
		fmt.Println("✅ No gate. You're clear for today.")
	}
	return nil
}
