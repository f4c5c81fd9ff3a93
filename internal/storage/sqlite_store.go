package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	_ "modernc.org/sqlite"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
)

// SQLiteStore persists the record in a local SQLite file. The whole state is
// loaded into memory up front and written back in one transaction on Save,
// keeping the core's synchronous single-writer model intact.
type SQLiteStore struct {
	path  string
	db    *sql.DB
	state *models.State
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{
		path: ExpandPath(path),
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS meta (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS tasks (
	id           TEXT PRIMARY KEY,
	position     INTEGER NOT NULL,
	title        TEXT NOT NULL,
	duration_min INTEGER NOT NULL,
	due          TEXT NOT NULL DEFAULT '',
	tags         TEXT NOT NULL DEFAULT '[]'
);
CREATE TABLE IF NOT EXISTS days (
	date          TEXT PRIMARY KEY,
	position      INTEGER NOT NULL,
	planned       INTEGER NOT NULL DEFAULT 0,
	checked       INTEGER NOT NULL DEFAULT 0,
	free_tomorrow INTEGER NOT NULL DEFAULT 0,
	summary       TEXT
);
CREATE TABLE IF NOT EXISTS items (
	id               TEXT PRIMARY KEY,
	day_date         TEXT NOT NULL REFERENCES days(date) ON DELETE CASCADE,
	position         INTEGER NOT NULL,
	task_id          TEXT NOT NULL DEFAULT '',
	title            TEXT NOT NULL,
	start            TEXT NOT NULL DEFAULT '',
	duration_min     INTEGER NOT NULL,
	status           TEXT NOT NULL DEFAULT '',
	partial_progress INTEGER NOT NULL DEFAULT 0,
	reasons          TEXT NOT NULL DEFAULT '[]',
	note             TEXT NOT NULL DEFAULT ''
);
CREATE TABLE IF NOT EXISTS streak_history (
	position INTEGER PRIMARY KEY AUTOINCREMENT,
	date     TEXT NOT NULL,
	streak   INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS settings (
	key   TEXT PRIMARY KEY,
	value TEXT NOT NULL
);
`

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return fmt.Errorf("storage already initialized at %s", s.path)
	}

	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	s.state = DefaultState()
	return s.Save()
}

func (s *SQLiteStore) Load() error {
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'gateplan init' first")
	}

	if s.db == nil {
		db, err := sql.Open("sqlite", s.path)
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		s.db = db
	}

	// Schema creation is idempotent; older files pick up new tables here.
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to ensure schema: %w", err)
	}

	state := DefaultState()

	if err := s.loadMeta(state); err != nil {
		return err
	}
	if err := s.loadTasks(state); err != nil {
		return err
	}
	if err := s.loadDays(state); err != nil {
		return err
	}
	if err := s.loadStreakHistory(state); err != nil {
		return err
	}
	if err := s.loadSettings(state); err != nil {
		return err
	}

	s.state = state
	return nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func (s *SQLiteStore) State() *models.State {
	return s.state
}

func (s *SQLiteStore) GetConfigPath() string {
	return s.path
}

func (s *SQLiteStore) loadMeta(state *models.State) error {
	rows, err := s.db.Query("SELECT key, value FROM meta")
	if err != nil {
		return fmt.Errorf("failed to read meta: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case "version":
			state.Version, _ = strconv.Atoi(value)
		case "streak":
			state.Streak, _ = strconv.Atoi(value)
		case "best_streak":
			state.BestStreak, _ = strconv.Atoi(value)
		case "last_checkin_date":
			state.LastCheckinDate = value
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) loadTasks(state *models.State) error {
	rows, err := s.db.Query("SELECT id, title, duration_min, due, tags FROM tasks ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to read tasks: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var t models.Task
		var tags string
		if err := rows.Scan(&t.ID, &t.Title, &t.DurationMin, &t.Due, &tags); err != nil {
			return err
		}
		if err := json.Unmarshal([]byte(tags), &t.Tags); err != nil {
			t.Tags = nil
		}
		state.Tasks = append(state.Tasks, t)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadDays(state *models.State) error {
	rows, err := s.db.Query("SELECT date, planned, checked, free_tomorrow, summary FROM days ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to read days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		day := &models.Day{Items: []models.PlanItem{}}
		var summary sql.NullString
		if err := rows.Scan(&day.Date, &day.Planned, &day.Checked, &day.FreeTomorrow, &summary); err != nil {
			return err
		}
		if summary.Valid && summary.String != "" {
			var sm models.Summary
			if err := json.Unmarshal([]byte(summary.String), &sm); err == nil {
				day.Summary = &sm
			}
		}
		state.Days = append(state.Days, day)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	for _, day := range state.Days {
		if err := s.loadItems(day); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteStore) loadItems(day *models.Day) error {
	rows, err := s.db.Query(`SELECT id, task_id, title, start, duration_min, status, partial_progress, reasons, note
		FROM items WHERE day_date = ? ORDER BY position`, day.Date)
	if err != nil {
		return fmt.Errorf("failed to read items for %s: %w", day.Date, err)
	}
	defer rows.Close()

	for rows.Next() {
		var it models.PlanItem
		var status, reasons string
		if err := rows.Scan(&it.ID, &it.TaskID, &it.Title, &it.Start, &it.DurationMin,
			&status, &it.PartialProgress, &reasons, &it.Note); err != nil {
			return err
		}
		it.Status = constants.ItemStatus(status)
		if err := json.Unmarshal([]byte(reasons), &it.Reasons); err != nil {
			it.Reasons = nil
		}
		day.Items = append(day.Items, it)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadStreakHistory(state *models.State) error {
	rows, err := s.db.Query("SELECT date, streak FROM streak_history ORDER BY position")
	if err != nil {
		return fmt.Errorf("failed to read streak history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var e models.StreakEntry
		if err := rows.Scan(&e.Date, &e.Streak); err != nil {
			return err
		}
		state.StreakHistory = append(state.StreakHistory, e)
	}
	return rows.Err()
}

func (s *SQLiteStore) loadSettings(state *models.State) error {
	rows, err := s.db.Query("SELECT key, value FROM settings")
	if err != nil {
		return fmt.Errorf("failed to read settings: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return err
		}
		switch key {
		case constants.SettingMorningHour:
			state.Settings.MorningHour = value
		case constants.SettingMinTasks:
			if n, err := strconv.Atoi(value); err == nil && n >= 1 {
				state.Settings.MinTasks = n
			}
		case constants.SettingStreakThreshold:
			if f, err := strconv.ParseFloat(value, 64); err == nil && f >= 0 && f <= 1 {
				state.Settings.StreakThreshold = f
			}
		case constants.SettingCalendarLinks:
			state.Settings.CalendarLinks = value == "true"
		case constants.SettingTimezone:
			state.Settings.Timezone = value
		}
	}
	return rows.Err()
}

func (s *SQLiteStore) Save() error {
	if s.state == nil {
		return fmt.Errorf("storage not loaded")
	}

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"meta", "tasks", "items", "days", "streak_history", "settings"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	meta := map[string]string{
		"version":           strconv.Itoa(s.state.Version),
		"streak":            strconv.Itoa(s.state.Streak),
		"best_streak":       strconv.Itoa(s.state.BestStreak),
		"last_checkin_date": s.state.LastCheckinDate,
	}
	for key, value := range meta {
		if _, err := tx.Exec("INSERT INTO meta (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to write meta: %w", err)
		}
	}

	for i, t := range s.state.Tasks {
		tags, err := json.Marshal(t.Tags)
		if err != nil {
			tags = []byte("[]")
		}
		if _, err := tx.Exec(`INSERT INTO tasks (id, position, title, duration_min, due, tags)
			VALUES (?, ?, ?, ?, ?, ?)`,
			t.ID, i, t.Title, t.DurationMin, t.Due, string(tags)); err != nil {
			return fmt.Errorf("failed to write task %s: %w", t.ID, err)
		}
	}

	for i, day := range s.state.Days {
		var summary any
		if day.Summary != nil {
			data, err := json.Marshal(day.Summary)
			if err != nil {
				return fmt.Errorf("failed to serialize summary for %s: %w", day.Date, err)
			}
			summary = string(data)
		}
		if _, err := tx.Exec(`INSERT INTO days (date, position, planned, checked, free_tomorrow, summary)
			VALUES (?, ?, ?, ?, ?, ?)`,
			day.Date, i, day.Planned, day.Checked, day.FreeTomorrow, summary); err != nil {
			return fmt.Errorf("failed to write day %s: %w", day.Date, err)
		}

		for j, it := range day.Items {
			reasons, err := json.Marshal(it.Reasons)
			if err != nil {
				reasons = []byte("[]")
			}
			if _, err := tx.Exec(`INSERT INTO items
				(id, day_date, position, task_id, title, start, duration_min, status, partial_progress, reasons, note)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
				it.ID, day.Date, j, it.TaskID, it.Title, it.Start, it.DurationMin,
				string(it.Status), it.PartialProgress, string(reasons), it.Note); err != nil {
				return fmt.Errorf("failed to write item %s: %w", it.ID, err)
			}
		}
	}

	for _, e := range s.state.StreakHistory {
		if _, err := tx.Exec("INSERT INTO streak_history (date, streak) VALUES (?, ?)", e.Date, e.Streak); err != nil {
			return fmt.Errorf("failed to write streak history: %w", err)
		}
	}

	settings := map[string]string{
		constants.SettingMorningHour:     s.state.Settings.MorningHour,
		constants.SettingMinTasks:        strconv.Itoa(s.state.Settings.MinTasks),
		constants.SettingStreakThreshold: strconv.FormatFloat(s.state.Settings.StreakThreshold, 'f', -1, 64),
		constants.SettingCalendarLinks:   strconv.FormatBool(s.state.Settings.CalendarLinks),
		constants.SettingTimezone:        s.state.Settings.Timezone,
	}
	for key, value := range settings {
		if _, err := tx.Exec("INSERT INTO settings (key, value) VALUES (?, ?)", key, value); err != nil {
			return fmt.Errorf("failed to write settings: %w", err)
		}
	}

	return tx.Commit()
}
