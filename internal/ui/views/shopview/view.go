package shopview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	shopdto "focusforge/internal/modules/shop/dto"
	"focusforge/internal/ui/theme"
)

type Model struct {
	items   []shopdto.ItemOutput
	message string
	cursor  int
	width   int
	height  int
}

func New() Model {
	return Model{}
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

func (m *Model) SetItems(items []shopdto.ItemOutput) {
	m.items = items
	if m.cursor >= len(items) {
		m.cursor = 0
	}
}

func (m *Model) SetMessage(message string) {
	m.message = message
}

func (m *Model) MoveCursor(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.items)) % len(m.items)
}

func (m Model) Selected() (shopdto.ItemOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return shopdto.ItemOutput{}, false
	}
	return m.items[m.cursor], true
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Builder Shop"))
	b.WriteString("\n\n")

	lastCategory := ""
	for i, item := range m.items {
		if item.Category != lastCategory {
			lastCategory = item.Category
			b.WriteString(theme.Muted.Render(strings.ToUpper(item.Category) + "S"))
			b.WriteString("\n")
		}
		marker := "  "
		if i == m.cursor {
			marker = theme.Hot.Render("> ")
		}
		name := item.Name
		price := theme.Coin.Render(fmt.Sprintf("%d", item.Price))
		switch {
		case item.Owned:
			name = theme.Good.Render(name)
			price = theme.Muted.Render("owned")
		case !item.Unlocked:
			name = theme.Muted.Render(name)
			price = theme.Muted.Render("???")
		}
		b.WriteString(fmt.Sprintf("%s%-24s %s\n", marker, name, price))
		if i == m.cursor {
			b.WriteString("    " + theme.Muted.Render(item.Description))
			if item.Effect != "" {
				b.WriteString(theme.Muted.Render("  (" + item.Effect + ")"))
			}
			if !item.Unlocked && item.RequirementText != "" {
				b.WriteString(theme.Bad.Render("  locked: " + item.RequirementText))
			}
			b.WriteString("\n")
		}
	}

	if m.message != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hot.Render(m.message))
	}

	return lipgloss.NewStyle().Width(m.width).Render(b.String())
}
