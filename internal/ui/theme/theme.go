package theme

import "github.com/charmbracelet/lipgloss"

var (
	Base     = lipgloss.Color("#1e1e2e")
	Mantle   = lipgloss.Color("#181825")
	Surface0 = lipgloss.Color("#313244")
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")
	Peach    = lipgloss.Color("#fab387")
	Red      = lipgloss.Color("#f38ba8")
	Gold     = lipgloss.Color("#f9e2af")
)

var (
	App        lipgloss.Style
	Pane       lipgloss.Style
	PaneActive lipgloss.Style
	Title      lipgloss.Style
	Muted      lipgloss.Style
	Hot        lipgloss.Style
	Good       lipgloss.Style
	Bad        lipgloss.Style
	Coin       lipgloss.Style
	BigTime    lipgloss.Style
)

func init() {
	restyle()
}

// Apply selects the palette named by the user's theme preference and rebuilds
// every derived style. Unknown names select the dark palette.
func Apply(name string) {
	switch name {
	case "light":
		Base = lipgloss.Color("#eff1f5")
		Mantle = lipgloss.Color("#e6e9ef")
		Surface0 = lipgloss.Color("#ccd0da")
		Surface1 = lipgloss.Color("#bcc0cc")
		Text = lipgloss.Color("#4c4f69")
		Subtext0 = lipgloss.Color("#6c6f85")
		Lavender = lipgloss.Color("#7287fd")
		Sapphire = lipgloss.Color("#209fb5")
		Green = lipgloss.Color("#40a02b")
		Peach = lipgloss.Color("#fe640b")
		Red = lipgloss.Color("#d20f39")
		Gold = lipgloss.Color("#df8e1d")
	default:
		Base = lipgloss.Color("#1e1e2e")
		Mantle = lipgloss.Color("#181825")
		Surface0 = lipgloss.Color("#313244")
		Surface1 = lipgloss.Color("#45475a")
		Text = lipgloss.Color("#cdd6f4")
		Subtext0 = lipgloss.Color("#a6adc8")
		Lavender = lipgloss.Color("#b4befe")
		Sapphire = lipgloss.Color("#74c7ec")
		Green = lipgloss.Color("#a6e3a1")
		Peach = lipgloss.Color("#fab387")
		Red = lipgloss.Color("#f38ba8")
		Gold = lipgloss.Color("#f9e2af")
	}
	restyle()
}

func restyle() {
	App = lipgloss.NewStyle().
		Background(Base).
		Foreground(Text).
		Padding(1, 2)

	Pane = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Background(Mantle).
		Foreground(Text).
		Padding(1)

	PaneActive = Pane.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Good = lipgloss.NewStyle().Foreground(Green).Bold(true)
	Bad = lipgloss.NewStyle().Foreground(Red).Bold(true)
	Coin = lipgloss.NewStyle().Foreground(Gold).Bold(true)
	BigTime = lipgloss.NewStyle().Foreground(Lavender).Bold(true)
}
