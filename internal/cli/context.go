package cli

import (
	"fmt"

	"github.com/mklein/gateplan/internal/backup"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/logger"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/planner"
	"github.com/mklein/gateplan/internal/storage"
	"github.com/mklein/gateplan/internal/utils"
)

type Context struct {
	Store storage.Provider
}

// Planner returns a planner over the loaded state.
func (c *Context) Planner() *planner.Planner {
	return planner.New(c.Store.State())
}

// Today returns today's date key in the configured timezone.
func (c *Context) Today() (string, error) {
	return utils.TodayInTimezone(c.Store.State().Settings.Timezone)
}

// SaveState persists the in-memory record. The mutation has already
// happened; a failed save is reported to the caller without any rollback.
func (c *Context) SaveState() error {
	if err := c.Store.Save(); err != nil {
		logger.Error("Failed to save state", "error", err)
		return fmt.Errorf("state changed in memory but could not be saved: %w", err)
	}
	return nil
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors
func (c *Context) PerformAutomaticBackup() {
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(c.Store.State()); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// FormatItemStatus renders an item status for list output.
func FormatItemStatus(status constants.ItemStatus) string {
	switch status {
	case constants.StatusSuccess:
		return "✅ success"
	case constants.StatusPartial:
		return "🟡 partial"
	case constants.StatusNotYet:
		return "⏳ not yet"
	case constants.StatusSkipped:
		return "⏭️  skipped"
	default:
		return "—"
	}
}

// FormatItem renders a one-line summary of a plan item.
func FormatItem(it models.PlanItem) string {
	line := it.Title
	if it.Start != "" {
		line = fmt.Sprintf("%s [%s]", line, it.Start)
	}
	return fmt.Sprintf("%s (%dm)", line, it.DurationMin)
}
