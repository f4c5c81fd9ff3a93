package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/storage"
)

func TestCreateAndRestoreBackup(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "gateplan.json")
	m := NewManager(configPath)

	state := storage.DefaultState()
	state.Streak = 5
	state.Tasks = append(state.Tasks, models.Task{ID: "t-1", Title: "Workout", DurationMin: 45})

	path, err := m.CreateBackup(state)
	if err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}
	if filepath.Dir(path) != m.GetBackupDir() {
		t.Errorf("backup written outside the backup dir: %q", path)
	}

	restored, err := m.Restore(path)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if restored.Streak != 5 {
		t.Errorf("streak = %d, want 5", restored.Streak)
	}
	if len(restored.Tasks) != 1 || restored.Tasks[0].Title != "Workout" {
		t.Errorf("tasks not round-tripped: %+v", restored.Tasks)
	}
}

func TestRestore_LegacyBackup(t *testing.T) {
	dir := t.TempDir()
	m := NewManager(filepath.Join(dir, "gateplan.json"))

	legacyPath := filepath.Join(dir, "old-export.json")
	legacy := `{"tasks": [{"title": "Reading", "defDur": 20}], "bestStreak": 2}`
	if err := os.WriteFile(legacyPath, []byte(legacy), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	restored, err := m.Restore(legacyPath)
	if err != nil {
		t.Fatalf("Restore failed: %v", err)
	}
	if len(restored.Tasks) != 1 || restored.Tasks[0].DurationMin != 20 {
		t.Errorf("legacy task not normalized: %+v", restored.Tasks)
	}
	if restored.BestStreak != 2 {
		t.Errorf("legacy best streak lost: %d", restored.BestStreak)
	}
}

func TestListBackups(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "gateplan.json"))

	// No backup dir yet.
	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 0 {
		t.Errorf("expected no backups, got %d", len(backups))
	}

	if _, err := m.CreateBackup(storage.DefaultState()); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	// Unrelated files are ignored.
	stray := filepath.Join(m.GetBackupDir(), "notes.txt")
	if err := os.WriteFile(stray, []byte("x"), 0600); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	backups, err = m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) != 1 {
		t.Errorf("expected 1 backup, got %d", len(backups))
	}
}

func TestRotateBackups(t *testing.T) {
	m := NewManager(filepath.Join(t.TempDir(), "gateplan.json"))
	if err := os.MkdirAll(m.GetBackupDir(), 0700); err != nil {
		t.Fatalf("mkdir failed: %v", err)
	}

	// Seed more files than the retention cap, oldest first.
	for i := 0; i < constants.MaxBackups+3; i++ {
		name := fmt.Sprintf("%s2026%02d%02d-0000%s", constants.BackupFilePrefix, i/28+1, i%28+1, constants.BackupFileSuffix)
		if err := os.WriteFile(filepath.Join(m.GetBackupDir(), name), []byte("{}"), 0600); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}

	if _, err := m.CreateBackup(storage.DefaultState()); err != nil {
		t.Fatalf("CreateBackup failed: %v", err)
	}

	backups, err := m.ListBackups()
	if err != nil {
		t.Fatalf("ListBackups failed: %v", err)
	}
	if len(backups) > constants.MaxBackups {
		t.Errorf("rotation left %d backups, cap is %d", len(backups), constants.MaxBackups)
	}
}
