package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/planner"
	"github.com/mklein/gateplan/internal/storage"
	"github.com/mklein/gateplan/internal/utils"
)

// Model is the dashboard: today's plan with statuses, the morning gate
// banner, and the streak. Status changes go straight through the planner;
// every mutation is saved immediately so the dashboard never holds
// unpersisted edits.
type Model struct {
	store    storage.Provider
	planner  *planner.Planner
	day      *models.Day
	now      time.Time
	cursor   int
	keys     KeyMap
	help     help.Model
	showHelp bool
	status   string
	quitting bool
}

// New builds the dashboard model over a loaded store.
func New(store storage.Provider) (Model, error) {
	state := store.State()
	now, err := utils.NowInTimezone(state.Settings.Timezone)
	if err != nil {
		return Model{}, err
	}

	p := planner.New(state)
	day := p.EnsureDay(utils.DateKey(now))

	return Model{
		store:   store,
		planner: p,
		day:     day,
		now:     now,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}, nil
}

func (m Model) Init() tea.Cmd {
	return tickCmd()
}

type tickMsg time.Time

// tickCmd re-evaluates the gate periodically, standing in for the original
// app's focus-regained recomputation.
func tickCmd() tea.Cmd {
	return tea.Tick(30*time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// selectedItem returns the item under the cursor, or nil.
func (m *Model) selectedItem() *models.PlanItem {
	if m.cursor < 0 || m.cursor >= len(m.day.Items) {
		return nil
	}
	return &m.day.Items[m.cursor]
}

// save persists the record and records any failure in the status line.
func (m *Model) save() {
	if err := m.store.Save(); err != nil {
		m.status = "save failed: " + err.Error()
	}
}
