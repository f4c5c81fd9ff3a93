package models

// StreakEntry is one row of the append-only streak history log.
type StreakEntry struct {
	Date   string `json:"date"` // YYYY-MM-DD format
	Streak int    `json:"streak"`
}
