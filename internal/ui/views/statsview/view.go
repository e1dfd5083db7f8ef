package statsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	rewardsdto "focusforge/internal/modules/rewards/dto"
	"focusforge/internal/ui/theme"
)

type Model struct {
	snapshot rewardsdto.LedgerOutput
	width    int
	height   int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetSnapshot(snapshot rewardsdto.LedgerOutput) {
	m.snapshot = snapshot
}

func (m Model) View() string {
	s := m.snapshot
	var b strings.Builder

	b.WriteString(theme.Title.Render("Builder Profile"))
	b.WriteString("\n\n")
	b.WriteString(theme.Coin.Render(fmt.Sprintf("%d coins", s.Coins)))
	b.WriteString(theme.Muted.Render(fmt.Sprintf("   streak %d days   houses %d", s.StreakDays, s.HousesBuilt)))
	b.WriteString("\n\n")

	rows := []struct{ label, value string }{
		{"total focus", formatDuration(s.TotalFocusSeconds)},
		{"sessions", fmt.Sprintf("%d completed / %d failed", s.CompletedSessions, s.FailedSessions)},
		{"success rate", fmt.Sprintf("%d%%", s.SuccessRatePercent)},
		{"longest session", formatDuration(s.LongestSessionSeconds)},
		{"average session", formatDuration(s.AverageSessionSeconds)},
		{"today", fmt.Sprintf("%d sessions, %s, %d coins", s.Daily.Sessions, formatDuration(s.Daily.Seconds), s.Daily.Coins)},
		{"this week", fmt.Sprintf("%d sessions, %s", s.Weekly.Sessions, formatDuration(s.Weekly.Seconds))},
	}
	for _, row := range rows {
		b.WriteString(theme.Muted.Render(fmt.Sprintf("%-16s", row.label)))
		b.WriteString(row.value)
		b.WriteString("\n")
	}

	if len(s.RecentUnlocks) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.Title.Render("Recent unlocks"))
		b.WriteString("\n")
		for _, id := range s.RecentUnlocks {
			b.WriteString(theme.Good.Render("• " + id))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}

func formatDuration(seconds int) string {
	if seconds >= 3600 {
		return fmt.Sprintf("%dh %dm", seconds/3600, seconds%3600/60)
	}
	return fmt.Sprintf("%dm", seconds/60)
}
