package achievementsview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	achievementdto "focusforge/internal/modules/achievement/dto"
	rewardsdto "focusforge/internal/modules/rewards/dto"
	"focusforge/internal/ui/theme"
)

type Model struct {
	defs   []achievementdto.DefinitionOutput
	states map[string]rewardsdto.AchievementStateOutput
	cursor int
	width  int
	height int
}

func New() Model {
	return Model{states: map[string]rewardsdto.AchievementStateOutput{}}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetDefinitions(defs []achievementdto.DefinitionOutput) {
	m.defs = defs
}

func (m *Model) SetStates(states []rewardsdto.AchievementStateOutput) {
	m.states = make(map[string]rewardsdto.AchievementStateOutput, len(states))
	for _, st := range states {
		m.states[st.ID] = st
	}
}

func (m *Model) MoveCursor(delta int) {
	if len(m.defs) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.defs)) % len(m.defs)
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Achievements"))
	b.WriteString("\n\n")

	for i, def := range m.defs {
		st := m.states[def.ID]
		marker := "  "
		if i == m.cursor {
			marker = theme.Hot.Render("> ")
		}
		name := def.Name
		if st.Unlocked {
			name = theme.Good.Render(name)
		} else {
			name = theme.Muted.Render(name)
		}
		progress := fmt.Sprintf("%d/%d", st.ProgressCurrent, def.Target)
		if st.Unlocked {
			progress = "done"
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n", marker, name,
			theme.Muted.Render("["+def.Rarity+"]"),
			theme.Muted.Render(progress)))
		if i == m.cursor {
			b.WriteString("    " + theme.Muted.Render(def.Description))
			b.WriteString(theme.Coin.Render(fmt.Sprintf("  +%d", def.CoinReward)))
			b.WriteString("\n")
		}
	}

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}
