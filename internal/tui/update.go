package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		m.refreshClock()
		return m, tickCmd()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) refreshClock() {
	now, err := utils.NowInTimezone(m.store.State().Settings.Timezone)
	if err != nil {
		return
	}
	m.now = now
	// Day rollover: midnight moves the dashboard to the new day.
	m.day = m.planner.EnsureDay(utils.DateKey(now))
	if m.cursor >= len(m.day.Items) {
		m.cursor = 0
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.day.Items)-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Success):
		m.markSelected(constants.StatusSuccess)

	case key.Matches(msg, m.keys.Partial):
		m.markSelected(constants.StatusPartial)

	case key.Matches(msg, m.keys.NotYet):
		m.markSelected(constants.StatusNotYet)

	case key.Matches(msg, m.keys.Skipped):
		m.markSelected(constants.StatusSkipped)

	case key.Matches(msg, m.keys.FreeDay):
		m.day.FreeTomorrow = !m.day.FreeTomorrow
		m.save()

	case key.Matches(msg, m.keys.Finish):
		if err := m.planner.FinishPlanning(m.day); err != nil {
			m.status = err.Error()
		} else {
			m.status = "plan locked in"
			m.save()
		}

	case key.Matches(msg, m.keys.Checkin):
		m.submitCheckin()
	}

	return m, nil
}

func (m *Model) markSelected(status constants.ItemStatus) {
	it := m.selectedItem()
	if it == nil {
		return
	}
	if err := m.planner.SetItemStatus(m.day, it.ID, status); err != nil {
		m.status = err.Error()
		return
	}
	m.save()
}

// submitCheckin submits the day. Items that still need justification keep
// the check-in blocked; the reason flow lives in 'gateplan checkin', so the
// dashboard just surfaces the validation error.
func (m *Model) submitCheckin() {
	if m.day.Checked {
		m.status = "today is already checked in"
		return
	}

	now, err := utils.NowInTimezone(m.store.State().Settings.Timezone)
	if err != nil {
		now = time.Now()
	}
	if err := m.planner.SubmitCheckin(m.day, now); err != nil {
		m.status = err.Error()
		return
	}
	m.status = "check-in saved"
	m.save()
}
