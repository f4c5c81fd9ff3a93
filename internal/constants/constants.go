package constants

// ItemStatus represents the check-in status of a planned item
type ItemStatus string

const (
	AppName           = "gateplan"
	DefaultConfigPath = "~/.config/gateplan/gateplan.json"
	Version           = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// Item status constants
	StatusSuccess ItemStatus = "success"
	StatusPartial ItemStatus = "partial"
	StatusNotYet  ItemStatus = "not_yet"
	StatusSkipped ItemStatus = "skipped"

	// StreakHistoryCap bounds the streak history log. Entries are trimmed
	// oldest-first by insertion order, not by date.
	StreakHistoryCap = 120

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "gateplan-"
	BackupFileSuffix = ".json"

	// StoreVersion is the current persisted-record version
	StoreVersion = 2
)

const (
	// Settings keys
	SettingMorningHour     = "morning_hour"
	SettingMinTasks        = "min_tasks"
	SettingStreakThreshold = "streak_threshold"
	SettingCalendarLinks   = "calendar_links"
	SettingTimezone        = "timezone"

	// Default settings values
	DefaultMorningHour     = "07:00"
	DefaultMinTasks        = 1
	DefaultStreakThreshold = 0.8
	DefaultCalendarLinks   = true
	DefaultTimezone        = "Local" // Use system local timezone by default

	// DefaultItemDurationMin is the fallback duration for tasks and plan items
	DefaultItemDurationMin = 30

	// DefaultPartialProgress is assigned when an item is marked partial
	// without an explicit progress value
	DefaultPartialProgress = 50
)

// SuggestedReasons is the built-in justification vocabulary offered during
// check-in. Free-text reasons are equally valid.
var SuggestedReasons = []string{
	"underestimated",
	"urgent_interruption",
	"low_energy",
	"blocked",
	"procrastination",
	"sick",
	"technical_issue",
}

// ValidStatuses lists every assignable item status.
var ValidStatuses = []ItemStatus{StatusSuccess, StatusPartial, StatusNotYet, StatusSkipped}

// IsValidStatus reports whether s is an assignable item status.
func IsValidStatus(s ItemStatus) bool {
	for _, v := range ValidStatuses {
		if s == v {
			return true
		}
	}
	return false
}
