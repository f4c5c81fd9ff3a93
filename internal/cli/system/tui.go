package system

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/tui"
)

type TuiCmd struct{}

func (c *TuiCmd) Run(ctx *cli.Context) error {
	// The dashboard mutates and saves freely; snapshot before handing over.
	ctx.PerformAutomaticBackup()

	model, err := tui.New(ctx.Store)
	if err != nil {
		return err
	}

	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}
