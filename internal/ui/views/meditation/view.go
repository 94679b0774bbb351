package meditation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	meditationdomain "gentlemind/internal/modules/meditation/domain"
	meditationdto "gentlemind/internal/modules/meditation/dto"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/theme"
)

var clockStyle = lipgloss.NewStyle().
	Foreground(theme.Text).
	Bold(true).
	Padding(1, 4).
	BorderStyle(lipgloss.DoubleBorder()).
	BorderForeground(theme.Surface1)

// Clock formats remaining seconds as MM:SS.
func Clock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// BreathLabel is the localized guide text for a phase.
func BreathLabel(lang i18n.Language, phase meditationdomain.BreathPhase) string {
	switch phase {
	case meditationdomain.BreathInhale:
		return i18n.T(lang, "inhale")
	case meditationdomain.BreathExhale:
		return i18n.T(lang, "exhale")
	}
	return i18n.T(lang, "ready")
}

// breathBar grows while inhaling and shrinks while exhaling.
func breathBar(phase meditationdomain.BreathPhase, elapsed int) string {
	const width = 10
	n := 1
	switch phase {
	case meditationdomain.BreathInhale:
		n = 1 + (elapsed%10)*3
	case meditationdomain.BreathExhale:
		n = width - (elapsed%10-4)*3/2
	}
	if n < 1 {
		n = 1
	}
	if n > width {
		n = width
	}
	return strings.Repeat("●", n)
}

func View(snap meditationdto.Snapshot, spin string, width int) string {
	lang := snap.Language
	status := theme.Calm.Render(BreathLabel(lang, snap.Breath))
	if !snap.Running {
		status = theme.Hot.Render(i18n.T(lang, "paused"))
	}

	script := theme.Quote.Render(snap.Script)
	if snap.ScriptLoading {
		script = spin + " " + theme.Muted.Render(i18n.T(lang, "prepare"))
	}
	w := width - 8
	if w < 30 {
		w = 30
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		clockStyle.Render(Clock(snap.Remaining)),
		"",
		theme.Calm.Render(breathBar(snap.Breath, snap.Elapsed)),
		status,
		"",
		theme.Card.Width(w).Render(script),
		"",
		theme.Muted.Render("space  ⏯   x  "+i18n.T(lang, "exit")),
	)
}
