package tui

import (
	"testing"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/storage"
	"github.com/mklein/gateplan/internal/utils"
)

// memStore is an in-memory Provider for dashboard tests.
type memStore struct {
	state *models.State
	saves int
}

func (s *memStore) Init() error           { return nil }
func (s *memStore) Load() error           { return nil }
func (s *memStore) Close() error          { return nil }
func (s *memStore) State() *models.State  { return s.state }
func (s *memStore) Save() error           { s.saves++; return nil }
func (s *memStore) GetConfigPath() string { return "" }

var _ storage.Provider = (*memStore)(nil)

func TestSubmitCheckin_AlreadyChecked(t *testing.T) {
	state := storage.DefaultState()
	today, err := utils.TodayInTimezone(state.Settings.Timezone)
	if err != nil {
		t.Fatalf("TodayInTimezone failed: %v", err)
	}

	state.Streak = 5
	state.Days = append(state.Days, &models.Day{
		Date:    today,
		Planned: true,
		Checked: true,
		Items: []models.PlanItem{
			{ID: "i-1", Title: "Workout", DurationMin: 45, Status: constants.StatusSuccess, PartialProgress: 100},
		},
	})

	store := &memStore{state: state}
	m, err := New(store)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	m.submitCheckin()

	if state.Streak != 5 {
		t.Errorf("streak changed on re-submission: %d", state.Streak)
	}
	if len(state.StreakHistory) != 0 {
		t.Errorf("re-submission appended to streak history: %+v", state.StreakHistory)
	}
	if store.saves != 0 {
		t.Errorf("re-submission saved %d time(s), want 0", store.saves)
	}
	if m.status == "" {
		t.Error("expected a status message explaining the refusal")
	}
}
