package system

import (
	"fmt"
	"os"

	"github.com/mklein/gateplan/internal/cli"
)

type InitCmd struct {
	Force bool `help:"Reinitialize even if storage already exists."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		path := ctx.Store.GetConfigPath()
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove existing storage: %w", err)
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	seedDemoTasks(ctx)
	if err := ctx.SaveState(); err != nil {
		return err
	}

	fmt.Printf("Initialized gateplan storage at %s\n", ctx.Store.GetConfigPath())
	fmt.Println("Added a few starter tasks; see 'gateplan task list'.")
	return nil
}

// seedDemoTasks fills an empty pool with the starter tasks so the first
// morning plan has something to pick from.
func seedDemoTasks(ctx *cli.Context) {
	state := ctx.Store.State()
	if len(state.Tasks) > 0 {
		return
	}

	p := ctx.Planner()
	_, _ = p.AddTask("30 min reading", 30, "", []string{"focus"})
	_, _ = p.AddTask("Workout", 45, "", []string{"health"})
	_, _ = p.AddTask("Deep work block", 60, "", []string{"study"})
}
