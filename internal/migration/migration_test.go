package migration

import (
	"testing"

	"github.com/mklein/gateplan/internal/constants"
)

func TestNormalize_EmptyAndCorrupt(t *testing.T) {
	for _, data := range [][]byte{nil, []byte("not json at all"), []byte("{}")} {
		state := Normalize(data)
		if state == nil {
			t.Fatal("Normalize returned nil")
		}
		if state.Version != constants.StoreVersion {
			t.Errorf("version = %d, want %d", state.Version, constants.StoreVersion)
		}
		if state.Settings.MorningHour != constants.DefaultMorningHour {
			t.Errorf("morning hour = %q, want default", state.Settings.MorningHour)
		}
		if state.Settings.StreakThreshold != constants.DefaultStreakThreshold {
			t.Errorf("threshold = %v, want default", state.Settings.StreakThreshold)
		}
		if len(state.Tasks) != 0 || len(state.Days) != 0 {
			t.Errorf("expected empty collections, got %d tasks %d days", len(state.Tasks), len(state.Days))
		}
	}
}

func TestNormalize_LegacyTaskFields(t *testing.T) {
	data := []byte(`{
		"tasks": [
			{"title": "Workout", "defDur": 45, "tags": ["health", " "]},
			{"title": "   "},
			{"id": "t-2", "title": "Reading", "duration_min": 30}
		]
	}`)

	state := Normalize(data)
	if len(state.Tasks) != 2 {
		t.Fatalf("expected 2 tasks (blank title dropped), got %d", len(state.Tasks))
	}

	workout := state.Tasks[0]
	if workout.DurationMin != 45 {
		t.Errorf("defDur not translated, duration = %d", workout.DurationMin)
	}
	if workout.ID == "" {
		t.Error("missing task id not generated")
	}
	if len(workout.Tags) != 1 || workout.Tags[0] != "health" {
		t.Errorf("tags not cleaned: %v", workout.Tags)
	}
	if state.Tasks[1].ID != "t-2" {
		t.Errorf("explicit id not preserved: %q", state.Tasks[1].ID)
	}
}

func TestNormalize_LegacyDayAndItemFields(t *testing.T) {
	data := []byte(`{
		"todayPlan": [
			{
				"date": "2026-08-30",
				"freeTomorrow": true,
				"items": [
					{"title": "Workout", "duration": 45, "status": "skipped", "reason": "sick"},
					{"title": "Reading", "status": "success", "partial_progress": 10},
					{"title": "Stretch", "status": "done", "partial_progress": 70}
				]
			},
			{"date": "2026-08-30"},
			{"date": ""}
		]
	}`)

	state := Normalize(data)
	if len(state.Days) != 1 {
		t.Fatalf("expected duplicate and dateless days dropped, got %d", len(state.Days))
	}

	day := state.Days[0]
	if !day.FreeTomorrow {
		t.Error("freeTomorrow alias not translated")
	}
	if len(day.Items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(day.Items))
	}

	skipped := day.Items[0]
	if skipped.DurationMin != 45 {
		t.Errorf("legacy duration not translated: %d", skipped.DurationMin)
	}
	if len(skipped.Reasons) != 1 || skipped.Reasons[0] != "sick" {
		t.Errorf("legacy single reason not folded in: %v", skipped.Reasons)
	}
	if skipped.ID == "" {
		t.Error("missing item id not generated")
	}

	success := day.Items[1]
	if success.PartialProgress != 100 {
		t.Errorf("success progress not forced to 100: %d", success.PartialProgress)
	}

	unknown := day.Items[2]
	if unknown.Status != "" {
		t.Errorf("unknown status not cleared: %q", unknown.Status)
	}
	if unknown.PartialProgress != 0 {
		t.Errorf("unstatused progress not zeroed: %d", unknown.PartialProgress)
	}
}

func TestNormalize_LegacyStreakAndSettings(t *testing.T) {
	data := []byte(`{
		"streak": 4,
		"bestStreak": 2,
		"streakHistory": [
			{"date": "2026-08-29", "streak": 3},
			{"date": "", "streak": 1}
		],
		"lastCheckinDate": "2026-08-29",
		"settings": {
			"morningHour": "08:30",
			"minTasks": 3,
			"streakThreshold": 0.5,
			"calLinks": "off"
		}
	}`)

	state := Normalize(data)
	if state.Streak != 4 {
		t.Errorf("streak = %d", state.Streak)
	}
	if state.BestStreak != 4 {
		t.Errorf("best streak must be raised to the current streak, got %d", state.BestStreak)
	}
	if len(state.StreakHistory) != 1 {
		t.Fatalf("dateless history rows must be dropped, got %d", len(state.StreakHistory))
	}
	if state.LastCheckinDate != "2026-08-29" {
		t.Errorf("lastCheckinDate alias not translated: %q", state.LastCheckinDate)
	}

	s := state.Settings
	if s.MorningHour != "08:30" {
		t.Errorf("morningHour alias not translated: %q", s.MorningHour)
	}
	if s.MinTasks != 3 {
		t.Errorf("minTasks alias not translated: %d", s.MinTasks)
	}
	if s.StreakThreshold != 0.5 {
		t.Errorf("streakThreshold alias not translated: %v", s.StreakThreshold)
	}
	if s.CalendarLinks {
		t.Error("calLinks \"off\" not translated to false")
	}
}

func TestNormalize_InvalidSettingsFallBack(t *testing.T) {
	data := []byte(`{
		"settings": {
			"morning_hour": "25:99",
			"min_tasks": -1,
			"streak_threshold": 1.5
		},
		"streak": -3
	}`)

	state := Normalize(data)
	s := state.Settings
	if s.MorningHour != constants.DefaultMorningHour {
		t.Errorf("invalid morning hour not defaulted: %q", s.MorningHour)
	}
	if s.MinTasks != constants.DefaultMinTasks {
		t.Errorf("invalid min tasks not defaulted: %d", s.MinTasks)
	}
	if s.StreakThreshold != constants.DefaultStreakThreshold {
		t.Errorf("out-of-range threshold not defaulted: %v", s.StreakThreshold)
	}
	if state.Streak != 0 {
		t.Errorf("negative streak not clamped: %d", state.Streak)
	}
}

func TestNormalize_ZeroThresholdKept(t *testing.T) {
	data := []byte(`{"settings": {"streak_threshold": 0}}`)
	state := Normalize(data)
	if state.Settings.StreakThreshold != 0 {
		t.Errorf("explicit zero threshold must be kept, got %v", state.Settings.StreakThreshold)
	}
}
