package migration

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// Normalize coerces an arbitrary persisted record into the canonical State
// shape. It is used at load time and on backup import, and it never fails:
// malformed or missing fields are substituted with defaults, legacy field
// names are translated, and missing ids are freshly generated. Unknown
// fields are dropped.
func Normalize(data []byte) *models.State {
	var raw rawState
	if len(data) > 0 {
		// Ignore parse errors; a corrupt blob degrades to an empty state
		// rather than failing the load.
		_ = json.Unmarshal(data, &raw)
	}
	if raw.BestStreak == 0 {
		raw.BestStreak = raw.LegacyBestStreak
	}
	if len(raw.StreakHistory) == 0 {
		raw.StreakHistory = raw.LegacyHistory
	}
	if raw.LastCheckinDate == "" {
		raw.LastCheckinDate = raw.LegacyLastCheckin
	}

	state := &models.State{
		Version:         constants.StoreVersion,
		Tasks:           make([]models.Task, 0, len(raw.Tasks)),
		Days:            make([]*models.Day, 0, len(raw.Days)+len(raw.TodayPlan)),
		Streak:          clampNonNegative(raw.Streak),
		BestStreak:      clampNonNegative(raw.BestStreak),
		LastCheckinDate: raw.LastCheckinDate,
		Settings:        normalizeSettings(raw.Settings),
	}

	for _, rt := range raw.Tasks {
		if task, ok := normalizeTask(rt); ok {
			state.Tasks = append(state.Tasks, task)
		}
	}

	// Older snapshots stored the day list under "todayPlan".
	days := raw.Days
	if len(days) == 0 {
		days = raw.TodayPlan
	}
	seen := make(map[string]bool)
	for _, rd := range days {
		day := normalizeDay(rd)
		if day.Date == "" || seen[day.Date] {
			continue
		}
		seen[day.Date] = true
		state.Days = append(state.Days, day)
	}

	for _, re := range raw.StreakHistory {
		if re.Date == "" {
			continue
		}
		state.StreakHistory = append(state.StreakHistory, models.StreakEntry{
			Date:   re.Date,
			Streak: clampNonNegative(re.Streak),
		})
	}
	if over := len(state.StreakHistory) - constants.StreakHistoryCap; over > 0 {
		state.StreakHistory = state.StreakHistory[over:]
	}

	if state.BestStreak < state.Streak {
		state.BestStreak = state.Streak
	}

	return state
}

// rawState accepts both current and legacy persisted shapes. Every field is
// optional.
type rawState struct {
	Version         int             `json:"version"`
	Tasks           []rawTask       `json:"tasks"`
	Days            []rawDay        `json:"days"`
	TodayPlan       []rawDay        `json:"todayPlan"` // legacy name for the day list
	Streak          int             `json:"streak"`
	BestStreak      int             `json:"best_streak"`
	StreakHistory   []rawStreakRow  `json:"streak_history"`
	LastCheckinDate string          `json:"last_checkin_date"`
	Settings        json.RawMessage `json:"settings"`

	// Legacy aliases
	LegacyBestStreak  int            `json:"bestStreak"`
	LegacyHistory     []rawStreakRow `json:"streakHistory"`
	LegacyLastCheckin string         `json:"lastCheckinDate"`
}

type rawTask struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	DurationMin int      `json:"duration_min"`
	DefDur      int      `json:"defDur"` // legacy name
	Due         string   `json:"due"`
	Tags        []string `json:"tags"`
}

func normalizeTask(rt rawTask) (models.Task, bool) {
	title := strings.TrimSpace(rt.Title)
	if title == "" {
		return models.Task{}, false
	}
	duration := rt.DurationMin
	if duration <= 0 {
		duration = rt.DefDur
	}
	if duration <= 0 {
		duration = constants.DefaultItemDurationMin
	}

	var tags []string
	for _, tag := range rt.Tags {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}

	id := rt.ID
	if id == "" {
		id = uuid.NewString()
	}

	return models.Task{
		ID:          id,
		Title:       title,
		DurationMin: duration,
		Due:         rt.Due,
		Tags:        tags,
	}, true
}

type rawDay struct {
	Date         string          `json:"date"`
	Items        []rawItem       `json:"items"`
	Planned      bool            `json:"planned"`
	Checked      bool            `json:"checked"`
	FreeTomorrow bool            `json:"free_tomorrow"`
	LegacyFree   bool            `json:"freeTomorrow"`
	Summary      *models.Summary `json:"summary"`
}

func normalizeDay(rd rawDay) *models.Day {
	day := &models.Day{
		Date:         rd.Date,
		Items:        make([]models.PlanItem, 0, len(rd.Items)),
		Planned:      rd.Planned,
		Checked:      rd.Checked,
		FreeTomorrow: rd.FreeTomorrow || rd.LegacyFree,
		Summary:      rd.Summary,
	}
	for _, ri := range rd.Items {
		day.Items = append(day.Items, normalizeItem(ri))
	}
	return day
}

type rawItem struct {
	ID              string   `json:"id"`
	TaskID          string   `json:"task_id"`
	Title           string   `json:"title"`
	Start           string   `json:"start"`
	DurationMin     int      `json:"duration_min"`
	Duration        int      `json:"duration"` // legacy name
	Status          string   `json:"status"`
	PartialProgress int      `json:"partial_progress"`
	Reasons         []string `json:"reasons"`
	Reason          string   `json:"reason"` // legacy single-reason field
	Note            string   `json:"note"`
}

func normalizeItem(ri rawItem) models.PlanItem {
	id := ri.ID
	if id == "" {
		id = uuid.NewString()
	}

	duration := ri.DurationMin
	if duration <= 0 {
		duration = ri.Duration
	}
	if duration <= 0 {
		duration = constants.DefaultItemDurationMin
	}

	status := constants.ItemStatus(ri.Status)
	if !constants.IsValidStatus(status) {
		status = ""
	}

	var reasons []string
	for _, r := range ri.Reasons {
		r = strings.TrimSpace(r)
		if r != "" {
			reasons = append(reasons, r)
		}
	}
	if legacy := strings.TrimSpace(ri.Reason); legacy != "" {
		reasons = append(reasons, legacy)
	}

	progress := ri.PartialProgress
	switch status {
	case constants.StatusSuccess:
		progress = 100
	case constants.StatusPartial:
		if progress < 0 {
			progress = 0
		}
		if progress > 100 {
			progress = 100
		}
	default:
		progress = 0
	}

	return models.PlanItem{
		ID:              id,
		TaskID:          ri.TaskID,
		Title:           ri.Title,
		Start:           ri.Start,
		DurationMin:     duration,
		Status:          status,
		PartialProgress: progress,
		Reasons:         reasons,
		Note:            ri.Note,
	}
}

type rawStreakRow struct {
	Date   string `json:"date"`
	Streak int    `json:"streak"`
}

type rawSettings struct {
	MorningHour     string   `json:"morning_hour"`
	LegacyMorning   string   `json:"morningHour"`
	MinTasks        int      `json:"min_tasks"`
	LegacyMinTasks  int      `json:"minTasks"`
	StreakThreshold *float64 `json:"streak_threshold"`
	LegacyThreshold *float64 `json:"streakThreshold"`
	CalendarLinks   *bool    `json:"calendar_links"`
	LegacyCalLinks  string   `json:"calLinks"` // legacy "on"/"off"
	Timezone        string   `json:"timezone"`
}

func normalizeSettings(data json.RawMessage) models.Settings {
	var raw rawSettings
	if len(data) > 0 {
		_ = json.Unmarshal(data, &raw)
	}

	settings := models.Settings{
		MorningHour:     constants.DefaultMorningHour,
		MinTasks:        constants.DefaultMinTasks,
		StreakThreshold: constants.DefaultStreakThreshold,
		CalendarLinks:   constants.DefaultCalendarLinks,
		Timezone:        constants.DefaultTimezone,
	}

	morning := raw.MorningHour
	if morning == "" {
		morning = raw.LegacyMorning
	}
	if _, err := time.Parse(constants.TimeFormat, morning); err == nil {
		settings.MorningHour = morning
	}

	minTasks := raw.MinTasks
	if minTasks == 0 {
		minTasks = raw.LegacyMinTasks
	}
	if minTasks >= 1 {
		settings.MinTasks = minTasks
	}

	threshold := raw.StreakThreshold
	if threshold == nil {
		threshold = raw.LegacyThreshold
	}
	if threshold != nil && *threshold >= 0 && *threshold <= 1 {
		settings.StreakThreshold = *threshold
	}

	if raw.CalendarLinks != nil {
		settings.CalendarLinks = *raw.CalendarLinks
	} else if raw.LegacyCalLinks != "" {
		settings.CalendarLinks = raw.LegacyCalLinks == "on"
	}

	if raw.Timezone != "" {
		settings.Timezone = raw.Timezone
	}

	return settings
}

func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
