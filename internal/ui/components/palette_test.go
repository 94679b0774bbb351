package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func submit(p Palette, text string) (Palette, tea.Msg) {
	p.Open()
	p.input.SetValue(text)
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return p, cmd()
}

func TestPaletteSubmitAndRecall(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p, msg := submit(p, "  preset 15 ")
	assert.Equal(t, PaletteSubmitMsg{Input: "preset 15"}, msg)
	assert.False(t, p.Visible())

	p, _ = submit(p, "lang")
	p, _ = submit(p, "lang")
	assert.Equal(t, []string{"preset 15", "lang"}, p.history)

	p.Open()
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "lang", p.input.Value())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "preset 15", p.input.Value())
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p, _ = p.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Empty(t, p.input.Value())
}

func TestPaletteCancel(t *testing.T) {
	t.Parallel()
	p := NewPalette()
	p.Open()
	p, cmd := p.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, p.Visible())
	assert.Equal(t, PaletteCancelMsg{}, cmd())
}

func TestMatchingHints(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []string{"preset <minutes>", "pause"}, Matching("p", 5))
	assert.Len(t, Matching("", 3), 3)
	assert.Empty(t, Matching("zzz", 5))
}

func TestDurationFieldIgnoresLetters(t *testing.T) {
	t.Parallel()
	d := NewDurationField()
	d.SetSeconds(330)
	d.Focus()
	m, s := d.Values()
	assert.Equal(t, "5", m)
	assert.Equal(t, "30", s)

	d, _, changed := d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a")})
	assert.False(t, changed)
	d, _, changed = d.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.True(t, changed)
	m, _ = d.Values()
	assert.Equal(t, "52", m)
}
