package planner

import (
	"time"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// ShouldGate decides whether the user is blocked from other activity until
// they plan. Pure function of current time, day state, and settings; callers
// re-invoke it after every state-changing operation and on wake/focus events
// rather than polling.
func ShouldGate(day *models.Day, settings models.Settings, now time.Time) bool {
	morning := settings.MorningHour
	t, err := time.Parse(constants.TimeFormat, morning)
	if err != nil {
		t, _ = time.Parse(constants.TimeFormat, constants.DefaultMorningHour)
	}

	gateTime := time.Date(now.Year(), now.Month(), now.Day(), t.Hour(), t.Minute(), 0, 0, now.Location())
	needsPlan := len(day.Items) < settings.MinTasks || !day.Planned
	return !now.Before(gateTime) && needsPlan && !day.Checked
}
