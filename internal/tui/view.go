package tui

import (
	"fmt"
	"strings"

	"github.com/mklein/gateplan/internal/constants"
	"github.com/mklein/gateplan/internal/models"
	"github.com/mklein/gateplan/internal/planner"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.store.State()
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("GatePlan — %s", m.day.Date)))
	b.WriteString(mutedStyle.Render(fmt.Sprintf("   streak %d 🔥 (best %d)", state.Streak, state.BestStreak)))
	b.WriteString("\n\n")

	if planner.ShouldGate(m.day, state.Settings, m.now) {
		b.WriteString(gateStyle.Render(fmt.Sprintf(
			"⛔ Plan your morning: add at least %d task(s) and press f", state.Settings.MinTasks)))
		b.WriteString("\n\n")
	}

	if len(m.day.Items) == 0 {
		b.WriteString(mutedStyle.Render("No tasks planned yet. Use 'gateplan plan add' to schedule some."))
		b.WriteString("\n")
	}

	for i, it := range m.day.Items {
		line := m.renderItem(it)
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(m.day.Items) > 0 {
		completion := planner.CalculateCompletion(m.day.Items)
		b.WriteString("\n")
		b.WriteString(fmt.Sprintf("%.1f/%d done (%.0f%%)", completion.Weighted, completion.Total, completion.Ratio()*100))
		if m.day.FreeTomorrow {
			b.WriteString(warningStyle.Render("  · rest day declared"))
		}
		if m.day.Checked {
			b.WriteString(successStyle.Render("  · checked in"))
		} else if m.day.Planned {
			b.WriteString(mutedStyle.Render("  · plan locked"))
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(warningStyle.Render(m.status))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(m.help.FullHelpView(m.keys.FullHelp()))
	} else {
		b.WriteString(m.help.ShortHelpView(m.keys.ShortHelp()))
	}

	return docStyle.Render(b.String())
}

func (m Model) renderItem(it models.PlanItem) string {
	marker := "·"
	switch it.Status {
	case constants.StatusSuccess:
		marker = successStyle.Render("✔")
	case constants.StatusPartial:
		marker = warningStyle.Render(fmt.Sprintf("%d%%", it.PartialProgress))
	case constants.StatusNotYet:
		marker = mutedStyle.Render("…")
	case constants.StatusSkipped:
		marker = mutedStyle.Render("✗")
	}

	line := fmt.Sprintf("%s %s", marker, it.Title)
	if it.Start != "" {
		line += mutedStyle.Render(" " + it.Start)
	}
	line += mutedStyle.Render(fmt.Sprintf(" %dm", it.DurationMin))
	return line
}
