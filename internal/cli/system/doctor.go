package system

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ps "github.com/mitchellh/go-ps"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/utils"
)

type DoctorCmd struct{}

// Run performs health checks: storage present and loadable, settings sane,
// and no second gateplan process mutating the same record. The state model
// assumes exactly one logical writer, so a concurrent process is worth a
// warning even though nothing enforces the lock.
func (c *DoctorCmd) Run(ctx *cli.Context) error {
	ok := true

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); err != nil {
		fmt.Printf("❌ storage: %s not found (run 'gateplan init')\n", path)
		ok = false
	} else {
		fmt.Printf("✅ storage: %s\n", path)
	}

	if dir := filepath.Dir(path); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			fmt.Printf("❌ config directory missing: %s\n", dir)
			ok = false
		}
	}

	s := ctx.Store.State().Settings
	if !utils.ValidateTimeFormat(s.MorningHour) {
		fmt.Printf("❌ settings: %s %q is not HH:MM\n", constants.SettingMorningHour, s.MorningHour)
		ok = false
	}
	if s.MinTasks < 1 {
		fmt.Printf("❌ settings: %s must be at least 1 (got %d)\n", constants.SettingMinTasks, s.MinTasks)
		ok = false
	}
	if s.StreakThreshold < 0 || s.StreakThreshold > 1 {
		fmt.Printf("❌ settings: %s must be within [0,1] (got %g)\n", constants.SettingStreakThreshold, s.StreakThreshold)
		ok = false
	}
	if !utils.ValidateTimezone(s.Timezone) {
		fmt.Printf("❌ settings: unknown timezone %q\n", s.Timezone)
		ok = false
	}
	if ok {
		fmt.Println("✅ settings: sane")
	}

	if others, err := otherGateplanProcesses(); err == nil && len(others) > 0 {
		fmt.Printf("⚠️  %d other gateplan process(es) running (pids %v); concurrent edits can clobber each other\n",
			len(others), others)
	} else {
		fmt.Println("✅ single writer: no other gateplan process found")
	}

	state := ctx.Store.State()
	fmt.Printf("✅ record: %d task(s), %d day(s), streak %d (best %d)\n",
		len(state.Tasks), len(state.Days), state.Streak, state.BestStreak)

	if !ok {
		return fmt.Errorf("doctor found problems")
	}
	return nil
}

func otherGateplanProcesses() ([]int, error) {
	procs, err := ps.Processes()
	if err != nil {
		return nil, err
	}
	var pids []int
	self := os.Getpid()
	for _, proc := range procs {
		if proc.Pid() == self {
			continue
		}
		name := strings.TrimSuffix(proc.Executable(), ".exe")
		if name == constants.AppName {
			pids = append(pids, proc.Pid())
		}
	}
	return pids, nil
}
