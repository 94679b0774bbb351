package wisdom

import (
	"github.com/charmbracelet/lipgloss"

	mooddto "gentlemind/internal/modules/mood/dto"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/theme"
)

// View shows the affirmation for the chosen mood. spin is rendered while the
// affirmation is still on its way.
func View(lang i18n.Language, mood mooddto.MoodOutput, affirmation string, loading bool, spin string, width int) string {
	body := theme.Quote.Render("“" + affirmation + "”")
	if loading {
		body = spin + " " + theme.Muted.Render(i18n.T(lang, "loading"))
	}
	w := width - 8
	if w < 30 {
		w = 30
	}
	card := theme.CardActive.BorderForeground(lipgloss.Color(mood.Color)).Width(w).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left,
		mood.Emoji+"  "+theme.MoodAccent(mood.Color).Render(mood.Label),
		"",
		card,
		"",
		theme.Hot.Render("enter  "+i18n.T(lang, "startMeditation")),
		theme.Muted.Render("esc  "+i18n.T(lang, "backHome")),
	)
}
