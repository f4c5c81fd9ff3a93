package models

// Settings represents application-wide settings
type Settings struct {
	MorningHour     string  `json:"morning_hour"`     // gate activation time, e.g. "07:00"
	MinTasks        int     `json:"min_tasks"`        // minimum plan size before a day counts as planned
	StreakThreshold float64 `json:"streak_threshold"` // minimum completion ratio in [0,1] to keep the streak
	CalendarLinks   bool    `json:"calendar_links"`   // whether to offer calendar-export links
	Timezone        string  `json:"timezone"`         // IANA timezone name, or "Local" for system timezone
}
