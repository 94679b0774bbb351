package setup

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	meditationdomain "gentlemind/internal/modules/meditation/domain"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/components"
	"gentlemind/internal/ui/theme"
)

// DurationChangedMsg carries the raw field values after an edit.
type DurationChangedMsg struct {
	Minutes string
	Seconds string
}

// Model is the duration picker. The controller owns the clamped value; the
// field shows whatever the user typed until the next Sync.
type Model struct {
	field components.DurationField
}

func New() Model {
	return Model{field: components.NewDurationField()}
}

// Sync loads the configured duration into the field and focuses it.
func (m *Model) Sync(cfg meditationdomain.Config) tea.Cmd {
	m.field.SetSeconds(cfg.DurationSeconds)
	return m.field.Focus()
}

func (m *Model) Blur() { m.field.Blur() }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	var changed bool
	m.field, cmd, changed = m.field.Update(msg)
	if changed {
		minutes, seconds := m.field.Values()
		return m, tea.Batch(cmd, func() tea.Msg {
			return DurationChangedMsg{Minutes: minutes, Seconds: seconds}
		})
	}
	return m, cmd
}

// NextPreset returns the preset following the current duration, wrapping.
func NextPreset(current int) int {
	for _, p := range meditationdomain.Presets {
		if p > current {
			return p
		}
	}
	return meditationdomain.Presets[0]
}

func (m Model) View(lang i18n.Language, cfg meditationdomain.Config) string {
	presets := make([]string, 0, len(meditationdomain.Presets))
	for _, p := range meditationdomain.Presets {
		label := fmt.Sprintf(" %d %s ", p/60, i18n.T(lang, "mins"))
		if p == cfg.DurationSeconds {
			presets = append(presets, theme.Hot.Render("["+label+"]"))
		} else {
			presets = append(presets, theme.Muted.Render(" "+label+" "))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		theme.Title.Render(i18n.T(lang, "setupTitle")),
		"",
		theme.Muted.Render(i18n.T(lang, "durationLabel")),
		m.field.View(),
		"",
		strings.Join(presets, " "),
		theme.Muted.Render("p  preset   tab  min/sec"),
		"",
		theme.Hot.Render("enter  "+i18n.T(lang, "startBtn")),
		theme.Muted.Render("esc  "+i18n.T(lang, "back")),
	)
}
