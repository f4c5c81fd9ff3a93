package models

import (
	"time"

	"github.com/mklein/gateplan/internal/constants"
)

// PlanItem is a concrete instance of a task scheduled into one day. Title and
// duration are snapshots taken at planning time; renaming the originating
// task later does not re-sync them.
type PlanItem struct {
	ID              string               `json:"id"`
	TaskID          string               `json:"task_id,omitempty"` // empty if ad-hoc or the task was deleted
	Title           string               `json:"title"`
	Start           string               `json:"start,omitempty"` // HH:MM format
	DurationMin     int                  `json:"duration_min"`
	Status          constants.ItemStatus `json:"status,omitempty"` // empty until checked in
	PartialProgress int                  `json:"partial_progress"` // 0-100, meaningful for partial status
	Reasons         []string             `json:"reasons,omitempty"`
	Note            string               `json:"note,omitempty"`
}

// Contribution returns the item's weight toward the day's completion score.
func (it PlanItem) Contribution() float64 {
	switch it.Status {
	case constants.StatusSuccess:
		return 1
	case constants.StatusPartial:
		return float64(it.PartialProgress) / 100
	default:
		return 0
	}
}

// Summary is written once when a day's check-in is submitted.
type Summary struct {
	WeightedScore float64   `json:"weighted_score"`
	TotalItems    int       `json:"total_items"`
	Ratio         float64   `json:"ratio"`
	CompletedAt   time.Time `json:"completed_at"`
}

// Day is the full planning and check-in record for one calendar date.
// Exactly one Day exists per date key; days are created lazily and never
// deleted.
type Day struct {
	Date         string     `json:"date"` // YYYY-MM-DD format
	Items        []PlanItem `json:"items"`
	Planned      bool       `json:"planned"`
	Checked      bool       `json:"checked"`
	FreeTomorrow bool       `json:"free_tomorrow"`
	Summary      *Summary   `json:"summary,omitempty"`
}

// FindItem returns a pointer to the item with the given id, or nil.
func (d *Day) FindItem(itemID string) *PlanItem {
	for i := range d.Items {
		if d.Items[i].ID == itemID {
			return &d.Items[i]
		}
	}
	return nil
}
