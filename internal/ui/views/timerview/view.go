package timerview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	sessiondto "focusforge/internal/modules/session/dto"
	"focusforge/internal/ui/theme"
)

// presets are the selectable session lengths, in minutes.
var presets = []int{15, 25, 45, 60, 90, 120}

type Model struct {
	timer   sessiondto.TimerView
	outcome *sessiondto.OutcomeOutput
	preset  int
	width   int
	height  int
}

func New() Model {
	return Model{preset: 1, timer: sessiondto.TimerView{Status: "idle"}}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetTimer(view sessiondto.TimerView) {
	m.timer = view
}

func (m *Model) SetOutcome(outcome *sessiondto.OutcomeOutput) {
	m.outcome = outcome
}

func (m *Model) CyclePreset(delta int) {
	m.preset = (m.preset + delta + len(presets)) % len(presets)
}

// SelectPreset moves the selection to the preset matching the given length.
// Lengths outside the preset list leave the selection where it was.
func (m *Model) SelectPreset(seconds int) {
	for i, p := range presets {
		if p*60 == seconds {
			m.preset = i
			return
		}
	}
}

func (m Model) SelectedSeconds() int {
	return presets[m.preset] * 60
}

func (m Model) Status() string {
	return m.timer.Status
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(theme.Title.Render("Focus Session"))
	b.WriteString("\n\n")

	switch m.timer.Status {
	case "idle":
		b.WriteString(theme.Muted.Render("Pick a duration and start building."))
		b.WriteString("\n\n")
		b.WriteString(m.presetLine())
	case "running":
		b.WriteString(theme.BigTime.Render(formatClock(m.timer.RemainingSeconds)))
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render(fmt.Sprintf("of %s, hands off the keyboard!", formatClock(m.timer.DurationSeconds))))
	case "paused":
		b.WriteString(theme.Hot.Render(formatClock(m.timer.RemainingSeconds)))
		b.WriteString("\n")
		b.WriteString(theme.Muted.Render("paused, space resumes"))
	case "completed":
		b.WriteString(theme.Good.Render("House complete!"))
		b.WriteString("\n")
		b.WriteString(m.outcomeLines())
		b.WriteString("\n")
		b.WriteString(m.presetLine())
	case "stopped":
		b.WriteString(theme.Bad.Render("House demolished."))
		b.WriteString("\n")
		b.WriteString(m.outcomeLines())
		b.WriteString("\n")
		b.WriteString(m.presetLine())
	}

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func (m Model) presetLine() string {
	parts := make([]string, 0, len(presets))
	for i, p := range presets {
		label := fmt.Sprintf("%dm", p)
		if i == m.preset {
			parts = append(parts, theme.Hot.Render("["+label+"]"))
		} else {
			parts = append(parts, theme.Muted.Render(" "+label+" "))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) outcomeLines() string {
	if m.outcome == nil {
		return ""
	}
	var b strings.Builder
	if m.outcome.Completed {
		b.WriteString(theme.Coin.Render(fmt.Sprintf("+%d coins", m.outcome.CoinsAwarded)))
		b.WriteString(theme.Muted.Render(fmt.Sprintf("  streak %d days", m.outcome.StreakDays)))
	} else {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%s of focus lost", formatClock(m.outcome.ElapsedSeconds))))
	}
	for _, name := range m.outcome.NewAchievements {
		b.WriteString("\n")
		b.WriteString(theme.Good.Render("achievement unlocked: " + name))
	}
	return b.String()
}

func formatClock(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%d:%02d:%02d", seconds/3600, seconds%3600/60, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
