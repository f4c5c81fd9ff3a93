package checkin

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/mklein/gateplan/internal/cli"
	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/storage"
	"github.com/mklein/gateplan/internal/utils"
)

func TestSubmit_AlreadyChecked(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gateplan.json")
	store := storage.NewJSONStore(path)
	if err := store.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	state := store.State()
	today, err := utils.TodayInTimezone(state.Settings.Timezone)
	if err != nil {
		t.Fatalf("TodayInTimezone failed: %v", err)
	}

	summary := &models.Summary{WeightedScore: 1, TotalItems: 1, Ratio: 1, CompletedAt: time.Now()}
	state.Streak = 3
	state.Days = append(state.Days, &models.Day{
		Date:    today,
		Planned: true,
		Checked: true,
		Items: []models.PlanItem{
			{ID: "i-1", Title: "Workout", DurationMin: 45, Status: constants.StatusSuccess, PartialProgress: 100},
		},
		Summary: summary,
	})

	cmd := &SubmitCmd{}
	if err := cmd.Run(&cli.Context{Store: store}); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// A second submission must not touch the streak or the one-time summary.
	if state.Streak != 3 {
		t.Errorf("streak changed on re-submission: %d", state.Streak)
	}
	if len(state.StreakHistory) != 0 {
		t.Errorf("re-submission appended to streak history: %+v", state.StreakHistory)
	}
	if state.Days[0].Summary != summary {
		t.Error("re-submission rewrote the summary")
	}
}
