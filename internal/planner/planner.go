package planner

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// Planner holds every state mutation of the plan/check-in lifecycle. It wraps
// an explicit state container; there is no package-level singleton. All
// operations are synchronous and run to completion, matching the
// single-logical-writer model: no Day is read or written by anyone else
// mid-operation.
type Planner struct {
	state *models.State
}

// New creates a Planner over the given state container.
func New(state *models.State) *Planner {
	return &Planner{state: state}
}

// State returns the underlying state container.
func (p *Planner) State() *models.State {
	return p.state
}

// Settings returns the current settings.
func (p *Planner) Settings() models.Settings {
	return p.state.Settings
}

// AddTask creates a task in the pool. Duration falls back to the default
// block length when not positive; empty tag strings are dropped.
func (p *Planner) AddTask(title string, durationMin int, due string, tags []string) (models.Task, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return models.Task{}, fmt.Errorf("task title cannot be empty")
	}
	if durationMin <= 0 {
		durationMin = constants.DefaultItemDurationMin
	}

	var cleaned []string
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			cleaned = append(cleaned, tag)
		}
	}

	task := models.Task{
		ID:          uuid.NewString(),
		Title:       title,
		DurationMin: durationMin,
		Due:         due,
		Tags:        cleaned,
	}
	p.state.Tasks = append(p.state.Tasks, task)
	return task, nil
}

// DeleteTask removes a task from the pool. Plan items that referenced it keep
// their snapshot title and become ad-hoc; their task lookups simply report
// not found from then on.
func (p *Planner) DeleteTask(id string) error {
	for i, t := range p.state.Tasks {
		if t.ID == id {
			p.state.Tasks = append(p.state.Tasks[:i], p.state.Tasks[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrTaskNotFound, id)
}

// FindTask looks a task up by id. A deleted referent is reported as not
// found, never as a dangling pointer.
func (p *Planner) FindTask(id string) (models.Task, bool) {
	for _, t := range p.state.Tasks {
		if t.ID == id {
			return t, true
		}
	}
	return models.Task{}, false
}

// EnsureDay returns the Day for the given date key, creating and storing an
// empty one on first access. It is idempotent and side-effect-free when the
// day already exists; the returned pointer is stable across calls.
func (p *Planner) EnsureDay(dateKey string) *models.Day {
	for _, d := range p.state.Days {
		if d.Date == dateKey {
			return d
		}
	}
	day := &models.Day{
		Date:  dateKey,
		Items: []models.PlanItem{},
	}
	p.state.Days = append(p.state.Days, day)
	return day
}

// ItemOverrides carries optional per-item adjustments applied at planning
// time.
type ItemOverrides struct {
	Start       string // HH:MM format
	DurationMin int
}

// AddItem schedules a task into the day, snapshotting its title and default
// duration. It never flips the planned flag; only FinishPlanning does.
func (p *Planner) AddItem(day *models.Day, task models.Task, ov ItemOverrides) models.PlanItem {
	duration := task.DurationMin
	if ov.DurationMin > 0 {
		duration = ov.DurationMin
	}
	if duration <= 0 {
		duration = constants.DefaultItemDurationMin
	}

	item := models.PlanItem{
		ID:          uuid.NewString(),
		TaskID:      task.ID,
		Title:       task.Title,
		Start:       ov.Start,
		DurationMin: duration,
	}
	day.Items = append(day.Items, item)
	return item
}

// RemoveItem removes a plan item by id. If the remaining item count drops
// below the minimum plan size, the day's planned flag is cleared again: a day
// can never stay locked with too few items.
func (p *Planner) RemoveItem(day *models.Day, itemID string) error {
	for i, it := range day.Items {
		if it.ID == itemID {
			day.Items = append(day.Items[:i], day.Items[i+1:]...)
			if len(day.Items) < p.state.Settings.MinTasks {
				day.Planned = false
			}
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrItemNotFound, itemID)
}

// FinishPlanning locks the day's plan in. Re-planning always re-opens the
// check-in, so checked and freeTomorrow are reset.
func (p *Planner) FinishPlanning(day *models.Day) error {
	minTasks := p.state.Settings.MinTasks
	if len(day.Items) < minTasks {
		return fmt.Errorf("%w: have %d, need %d", ErrInsufficientTasks, len(day.Items), minTasks)
	}
	day.Planned = true
	day.Checked = false
	day.FreeTomorrow = false
	return nil
}
