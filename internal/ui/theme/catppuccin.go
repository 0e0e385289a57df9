package theme

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha accents.
var (
	Surface1 = lipgloss.Color("#45475a")
	Text     = lipgloss.Color("#cdd6f4")
	Subtext0 = lipgloss.Color("#a6adc8")
	Lavender = lipgloss.Color("#b4befe")
	Sapphire = lipgloss.Color("#74c7ec")
	Green    = lipgloss.Color("#a6e3a1")

	Title = lipgloss.NewStyle().Foreground(Sapphire).Bold(true)
	Label = lipgloss.NewStyle().Foreground(Lavender)
	Value = lipgloss.NewStyle().Foreground(Green)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)

	TableBorder = lipgloss.NewStyle().Foreground(Surface1)
	TableHeader = lipgloss.NewStyle().Foreground(Sapphire).Bold(true).Padding(0, 1)
	TableCell   = lipgloss.NewStyle().Foreground(Text).Padding(0, 1)
)
