package models

// State is the single persisted application record. All core operations
// mutate a State in memory; storage providers load and save it whole. There
// is exactly one logical writer at a time.
type State struct {
	Version         int           `json:"version"`
	Tasks           []Task        `json:"tasks"`
	Days            []*Day        `json:"days"`
	Streak          int           `json:"streak"`
	BestStreak      int           `json:"best_streak"`
	StreakHistory   []StreakEntry `json:"streak_history"`
	LastCheckinDate string        `json:"last_checkin_date,omitempty"`
	Settings        Settings      `json:"settings"`
}
