package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"gentlemind/internal/ui/theme"
)

// PaletteSubmitMsg is emitted when the user confirms a command.
type PaletteSubmitMsg struct{ Input string }

// PaletteCancelMsg is emitted when the user presses esc.
type PaletteCancelMsg struct{}

var (
	paletteStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Lavender).
			Foreground(theme.Text).
			Padding(0, 1)

	hintStyle = lipgloss.NewStyle().Foreground(theme.Subtext0)
)

// PaletteHints must stay in sync with the switch in app/model.go executePalette.
var PaletteHints = []string{
	"mood <amazing|happy|normal|exhausted|depressed|angry>",
	"duration <minutes> [seconds]",
	"preset <minutes>",
	"start",
	"pause",
	"exit",
	"stats",
	"lang",
	"reset",
}

const historySize = 20

// Palette is a command line overlay backed by bubbles/textinput. Up and down
// walk back through previously submitted commands.
type Palette struct {
	input   textinput.Model
	visible bool
	width   int
	history []string
	recall  int
}

func NewPalette() Palette {
	ti := textinput.New()
	ti.Placeholder = "type a command…"
	ti.CharLimit = 64
	return Palette{input: ti}
}

func (p Palette) Visible() bool { return p.visible }

// Open shows the palette with an empty input and returns the focus command.
func (p *Palette) Open() tea.Cmd {
	p.visible = true
	p.input.SetValue("")
	p.recall = len(p.history)
	return p.input.Focus()
}

func (p *Palette) SetWidth(w int) { p.width = w }

func (p Palette) Update(msg tea.Msg) (Palette, tea.Cmd) {
	if !p.visible {
		return p, nil
	}
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "esc":
			p.visible = false
			p.input.Blur()
			return p, func() tea.Msg { return PaletteCancelMsg{} }
		case "enter":
			val := strings.TrimSpace(p.input.Value())
			p.visible = false
			p.input.Blur()
			p.remember(val)
			return p, func() tea.Msg { return PaletteSubmitMsg{Input: val} }
		case "up":
			if p.recall > 0 {
				p.recall--
				p.input.SetValue(p.history[p.recall])
				p.input.CursorEnd()
			}
			return p, nil
		case "down":
			if p.recall < len(p.history)-1 {
				p.recall++
				p.input.SetValue(p.history[p.recall])
				p.input.CursorEnd()
			} else {
				p.recall = len(p.history)
				p.input.SetValue("")
			}
			return p, nil
		}
	}
	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

func (p *Palette) remember(cmd string) {
	if cmd == "" {
		return
	}
	if n := len(p.history); n > 0 && p.history[n-1] == cmd {
		return
	}
	p.history = append(p.history, cmd)
	if len(p.history) > historySize {
		p.history = p.history[len(p.history)-historySize:]
	}
}

// Matching returns up to limit hints that start with prefix.
func Matching(prefix string, limit int) []string {
	prefix = strings.ToLower(strings.TrimSpace(prefix))
	var out []string
	for _, h := range PaletteHints {
		if prefix == "" || strings.HasPrefix(h, prefix) {
			out = append(out, h)
			if len(out) == limit {
				break
			}
		}
	}
	return out
}

func (p Palette) View() string {
	if !p.visible {
		return ""
	}
	matching := Matching(p.input.Value(), 5)

	var sb strings.Builder
	sb.WriteString(theme.Title.Render("Command") + "\n")
	sb.WriteString(": " + p.input.View() + "\n")
	if len(matching) > 0 {
		sb.WriteString("\n")
		for _, h := range matching {
			sb.WriteString(hintStyle.Render("  "+h) + "\n")
		}
	}

	w := p.width
	if w < 20 {
		w = 64
	}
	return paletteStyle.Width(w - 2).Render(sb.String())
}
