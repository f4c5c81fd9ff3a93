package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// SetItemStatus assigns a check-in status and applies the transition side
// effects: success clears reasons and forces progress to 100, partial keeps
// prior progress or defaults to 50, everything else forces progress to 0.
func (p *Planner) SetItemStatus(day *models.Day, itemID string, status constants.ItemStatus) error {
	if !constants.IsValidStatus(status) {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	it := day.FindItem(itemID)
	if it == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}

	it.Status = status
	switch status {
	case constants.StatusSuccess:
		it.Reasons = nil
		it.PartialProgress = 100
	case constants.StatusPartial:
		if it.PartialProgress <= 0 || it.PartialProgress > 100 {
			it.PartialProgress = constants.DefaultPartialProgress
		}
	default:
		it.PartialProgress = 0
	}
	return nil
}

// SetPartialProgress pins an explicit progress value on a partial item.
// Values are clamped to [0,100].
func (p *Planner) SetPartialProgress(day *models.Day, itemID string, progress int) error {
	it := day.FindItem(itemID)
	if it == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}
	it.PartialProgress = progress
	return nil
}

// AddReason appends a free-text justification. Empty strings are excluded;
// duplicates are allowed.
func (p *Planner) AddReason(day *models.Day, itemID, reason string) error {
	it := day.FindItem(itemID)
	if it == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil
	}
	it.Reasons = append(it.Reasons, reason)
	return nil
}

// SetNote replaces the item's free-text note.
func (p *Planner) SetNote(day *models.Day, itemID, note string) error {
	it := day.FindItem(itemID)
	if it == nil {
		return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
	}
	it.Note = note
	return nil
}

// ValidateCheckin checks every item before a day can be marked checked.
// Validation is all-or-nothing: the first failing item aborts with no
// partial writes.
func ValidateCheckin(items []models.PlanItem) error {
	for _, it := range items {
		if it.Status == "" {
			return fmt.Errorf("%w: %q", ErrMissingStatus, it.Title)
		}
		if it.Status == constants.StatusNotYet || it.Status == constants.StatusSkipped {
			if len(it.Reasons) == 0 && strings.TrimSpace(it.Note) == "" {
				return fmt.Errorf("%w: %q", ErrMissingJustification, it.Title)
			}
		}
	}
	return nil
}

// SubmitCheckin validates the day, writes its one-time summary, marks it
// checked, and applies the streak rule: a qualifying day increments the
// streak (tracking the best ever seen), any other day resets it to zero.
// The outcome is appended to the streak history, trimmed to the most recent
// entries by insertion order.
func (p *Planner) SubmitCheckin(day *models.Day, now time.Time) error {
	if err := ValidateCheckin(day.Items); err != nil {
		return err
	}

	completion := CalculateCompletion(day.Items)
	ratio := completion.Ratio()
	day.Summary = &models.Summary{
		WeightedScore: completion.Weighted,
		TotalItems:    completion.Total,
		Ratio:         ratio,
		CompletedAt:   now,
	}
	day.Checked = true

	if Qualifies(ratio, day.FreeTomorrow, p.state.Settings.StreakThreshold) {
		p.state.Streak++
		if p.state.Streak > p.state.BestStreak {
			p.state.BestStreak = p.state.Streak
		}
	} else {
		p.state.Streak = 0
	}

	p.state.StreakHistory = append(p.state.StreakHistory, models.StreakEntry{
		Date:   day.Date,
		Streak: p.state.Streak,
	})
	if over := len(p.state.StreakHistory) - constants.StreakHistoryCap; over > 0 {
		p.state.StreakHistory = p.state.StreakHistory[over:]
	}
	p.state.LastCheckinDate = day.Date

	return nil
}
