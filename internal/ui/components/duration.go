package components

import (
	"strconv"
	"unicode"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gentlemind/internal/ui/theme"
)

// DurationField is the minutes : seconds pair on the setup screen. It only
// accepts digits; tab moves focus between the two inputs.
type DurationField struct {
	minutes textinput.Model
	seconds textinput.Model
	focus   int
}

func NewDurationField() DurationField {
	m := textinput.New()
	m.CharLimit = 3
	m.Width = 4
	m.Prompt = ""

	s := textinput.New()
	s.CharLimit = 2
	s.Width = 3
	s.Prompt = ""

	return DurationField{minutes: m, seconds: s}
}

func digitsOnly(runes []rune) bool {
	for _, r := range runes {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// SetSeconds shows total as minutes and seconds.
func (d *DurationField) SetSeconds(total int) {
	d.minutes.SetValue(strconv.Itoa(total / 60))
	d.seconds.SetValue(strconv.Itoa(total % 60))
}

func (d DurationField) Values() (minutes, seconds string) {
	return d.minutes.Value(), d.seconds.Value()
}

func (d *DurationField) Focus() tea.Cmd {
	d.seconds.Blur()
	d.focus = 0
	return d.minutes.Focus()
}

func (d *DurationField) Blur() {
	d.minutes.Blur()
	d.seconds.Blur()
}

func (d DurationField) Focused() bool {
	return d.minutes.Focused() || d.seconds.Focused()
}

// Update routes keys to the focused input and reports whether the value
// changed.
func (d DurationField) Update(msg tea.Msg) (DurationField, tea.Cmd, bool) {
	k, isKey := msg.(tea.KeyMsg)
	if isKey && k.Type == tea.KeyRunes && !digitsOnly(k.Runes) {
		return d, nil, false
	}
	if isKey && k.String() == "tab" {
		if d.focus == 0 {
			d.minutes.Blur()
			d.focus = 1
			return d, d.seconds.Focus(), false
		}
		d.seconds.Blur()
		d.focus = 0
		return d, d.minutes.Focus(), false
	}

	beforeMin, beforeSec := d.Values()
	var cmd tea.Cmd
	if d.focus == 0 {
		d.minutes, cmd = d.minutes.Update(msg)
	} else {
		d.seconds, cmd = d.seconds.Update(msg)
	}
	afterMin, afterSec := d.Values()
	return d, cmd, beforeMin != afterMin || beforeSec != afterSec
}

func (d DurationField) View() string {
	minStyle, secStyle := theme.Card, theme.Card
	if d.focus == 0 && d.Focused() {
		minStyle = theme.CardActive
	}
	if d.focus == 1 && d.Focused() {
		secStyle = theme.CardActive
	}
	return lipgloss.JoinHorizontal(lipgloss.Center,
		minStyle.Padding(0, 1).Render(d.minutes.View()),
		" : ",
		secStyle.Padding(0, 1).Render(d.seconds.View()),
	)
}
