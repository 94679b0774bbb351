package theme

import "github.com/charmbracelet/lipgloss"

// Night-sky palette; mood colours come from the mood catalogue.
var (
	Base     = lipgloss.Color("#0f172a")
	Mantle   = lipgloss.Color("#111827")
	Surface0 = lipgloss.Color("#1e293b")
	Surface1 = lipgloss.Color("#334155")
	Text     = lipgloss.Color("#e2e8f0")
	Subtext0 = lipgloss.Color("#94a3b8")
	Lavender = lipgloss.Color("#c4b5fd")
	Sky      = lipgloss.Color("#7dd3fc")
	Sage     = lipgloss.Color("#86efac")
	Peach    = lipgloss.Color("#fdba74")

	App = lipgloss.NewStyle().
		Foreground(Text).
		Padding(1, 2)

	Card = lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(Surface1).
		Foreground(Text).
		Padding(1, 2)

	CardActive = Card.BorderForeground(Lavender)

	Title = lipgloss.NewStyle().Foreground(Sky).Bold(true)
	Muted = lipgloss.NewStyle().Foreground(Subtext0)
	Hot   = lipgloss.NewStyle().Foreground(Peach).Bold(true)
	Calm  = lipgloss.NewStyle().Foreground(Sage)
	Quote = lipgloss.NewStyle().Foreground(Lavender).Italic(true)
)

// MoodAccent colours text with a mood's hex colour, falling back to Text.
func MoodAccent(hex string) lipgloss.Style {
	if hex == "" {
		return lipgloss.NewStyle().Foreground(Text)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Bold(true)
}
