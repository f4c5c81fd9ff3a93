package storage

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// ExpandPath resolves a leading ~ against the user's home directory.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	return path
}

// DefaultState returns a fresh record with default settings, used by Init.
func DefaultState() *models.State {
	return &models.State{
		Version: constants.StoreVersion,
		Tasks:   []models.Task{},
		Days:    []*models.Day{},
		Settings: models.Settings{
			MorningHour:     constants.DefaultMorningHour,
			MinTasks:        constants.DefaultMinTasks,
			StreakThreshold: constants.DefaultStreakThreshold,
			CalendarLinks:   constants.DefaultCalendarLinks,
			Timezone:        constants.DefaultTimezone,
		},
	}
}
