package summary

import (
	"github.com/charmbracelet/lipgloss"

	meditationdto "gentlemind/internal/modules/meditation/dto"
	mooddto "gentlemind/internal/modules/mood/dto"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/theme"
)

func View(snap meditationdto.Snapshot, mood mooddto.MoodOutput, spin string, width int) string {
	lang := snap.Language
	minutes := 0.0
	if snap.LastRecord != nil {
		minutes = snap.LastRecord.DurationMinutes
	}

	message := theme.Quote.Render(snap.Closing)
	if snap.ClosingLoading {
		message = spin + " " + theme.Muted.Render(i18n.T(lang, "loading"))
	} else if snap.Closing == "" {
		message = theme.Quote.Render(i18n.T(lang, "healingDefault"))
	}
	w := width - 8
	if w < 30 {
		w = 30
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render("✨ "+i18n.T(lang, "greatJob")),
		theme.Muted.Render(i18n.T(lang, "compliment")),
		"",
		i18n.TimeSpent(lang, minutes),
		theme.Muted.Render(i18n.T(lang, "moodBefore")+": ")+mood.Emoji+" "+theme.MoodAccent(mood.Color).Render(mood.Label),
		"",
		theme.Card.Width(w).Render(theme.Hot.Render(i18n.T(lang, "healingMsgTitle"))+"\n\n"+message),
		"",
		theme.Hot.Render("enter  "+i18n.T(lang, "viewProgress")),
		theme.Muted.Render("r  "+i18n.T(lang, "backHome")),
	)
}
