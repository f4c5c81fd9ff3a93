package main

import (
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/cli/backups"
	"github.com/mklein/gateplan/internal/cli/checkin"
	"github.com/mklein/gateplan/internal/cli/plans"
	"github.com/mklein/gateplan/internal/cli/settings"
	"github.com/mklein/gateplan/internal/cli/system"
	"github.com/mklein/gateplan/internal/cli/tasks"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/errors"
	"github.com/mklein/gateplan/internal/logger"
	"github.com/mklein/gateplan/internal/storage"
)

var CLI struct {
	Version kong.VersionFlag
	Config  string `help:"Storage path. Use a .db/.sqlite extension for SQLite, anything else for JSON." type:"string" default:"~/.config/gateplan/gateplan.json"`
	Debug   bool   `help:"Enable debug logging."`

	Init    system.InitCmd     `cmd:"" help:"Initialize gateplan storage."`
	Doctor  system.DoctorCmd   `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd      `cmd:"" help:"Launch the interactive dashboard." default:"1"`
	Day     plans.DayCmd       `cmd:"" help:"Show the plan for a day."`
	Checkin checkin.CheckinCmd `cmd:"" help:"Walk through the evening check-in."`
	Mark    checkin.MarkCmd    `cmd:"" help:"Mark a single plan item."`
	Submit  checkin.SubmitCmd  `cmd:"" help:"Submit today's check-in non-interactively."`
	Gate    cli.GateCmd        `cmd:"" help:"Check whether the morning gate is active."`
	Streak  cli.StreakCmd      `cmd:"" help:"Show the current streak."`
	Export  cli.ExportCmd      `cmd:"" help:"Export a day's plan, with calendar links."`
	Plan    struct {
		Add    plans.PlanAddCmd    `cmd:"" help:"Add a task to a day's plan."`
		Remove plans.PlanRemoveCmd `cmd:"" help:"Remove an item from a day's plan."`
		Finish plans.PlanFinishCmd `cmd:"" help:"Finish planning and lift the gate."`
	} `cmd:"" help:"Build the day plan."`
	Task struct {
		Add    tasks.TaskAddCmd    `cmd:"" help:"Add a new task."`
		List   tasks.TaskListCmd   `cmd:"" help:"List all tasks."`
		Delete tasks.TaskDeleteCmd `cmd:"" help:"Delete a task."`
	} `cmd:"" help:"Manage the task pool."`
	Backup struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage storage backups."`
	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name(constants.AppName),
		kong.Description("Morning planning gate and evening check-in companion"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{"version": constants.Version},
	)

	configPath := storage.ExpandPath(CLI.Config)

	if err := logger.Init(logger.Config{
		Debug:     CLI.Debug,
		ConfigDir: filepath.Dir(configPath),
	}); err != nil {
		errors.Fatal(err)
	}

	var store storage.Provider
	switch strings.ToLower(filepath.Ext(configPath)) {
	case ".db", ".sqlite", ".sqlite3":
		store = storage.NewSQLiteStore(configPath)
	default:
		store = storage.NewJSONStore(configPath)
	}
	defer store.Close()

	// Init creates the storage itself; everything else expects it to exist.
	if ctx.Selected() != nil && ctx.Selected().Name != "init" {
		if err := store.Load(); err != nil {
			errors.Fatal(err)
		}
	}

	if err := ctx.Run(&cli.Context{Store: store}); err != nil {
		errors.Fatal(err)
	}
}
