package checkin

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mooddto "gentlemind/internal/modules/mood/dto"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/theme"
)

const columns = 3

// Model is the mood grid. Moods arrive already labelled in the UI language.
type Model struct {
	moods  []mooddto.MoodOutput
	cursor int
}

func New() Model {
	return Model{}
}

func (m *Model) SetMoods(moods []mooddto.MoodOutput) {
	m.moods = moods
	if m.cursor >= len(moods) {
		m.cursor = 0
	}
}

// Selected returns the mood under the cursor.
func (m Model) Selected() (mooddto.MoodOutput, bool) {
	if m.cursor < 0 || m.cursor >= len(m.moods) {
		return mooddto.MoodOutput{}, false
	}
	return m.moods[m.cursor], true
}

// At returns the mood bound to the 1-based number key n.
func (m Model) At(n int) (mooddto.MoodOutput, bool) {
	if n < 1 || n > len(m.moods) {
		return mooddto.MoodOutput{}, false
	}
	return m.moods[n-1], true
}

// Find returns the mood with the given id, if listed.
func (m Model) Find(id string) (mooddto.MoodOutput, bool) {
	for _, mood := range m.moods {
		if strings.EqualFold(mood.ID, id) {
			return mood, true
		}
	}
	return mooddto.MoodOutput{}, false
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok || len(m.moods) == 0 {
		return m, nil
	}
	n := len(m.moods)
	switch k.String() {
	case "left", "h":
		m.cursor = (m.cursor + n - 1) % n
	case "right", "l":
		m.cursor = (m.cursor + 1) % n
	case "up", "k":
		if m.cursor-columns >= 0 {
			m.cursor -= columns
		}
	case "down", "j":
		if m.cursor+columns < n {
			m.cursor += columns
		}
	}
	return m, nil
}

func (m Model) View(lang i18n.Language) string {
	var rows []string
	var row []string
	for i, mood := range m.moods {
		style := theme.Card.Width(22)
		if i == m.cursor {
			style = theme.CardActive.Width(22).BorderForeground(lipgloss.Color(mood.Color))
		}
		cell := fmt.Sprintf("%d  %s\n%s\n%s",
			i+1, mood.Emoji,
			theme.MoodAccent(mood.Color).Render(mood.Label),
			theme.Muted.Render(mood.Description))
		row = append(row, style.Render(cell))
		if len(row) == columns {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(i18n.T(lang, "welcome")),
		theme.Muted.Render(i18n.T(lang, "selectMood")),
		"",
		lipgloss.JoinVertical(lipgloss.Left, rows...),
		"",
		theme.Muted.Render("s  "+i18n.T(lang, "statsBtn")),
	)
}
