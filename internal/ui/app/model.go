package app

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	meditationdomain "gentlemind/internal/modules/meditation/domain"
	meditationdto "gentlemind/internal/modules/meditation/dto"
	mooddto "gentlemind/internal/modules/mood/dto"
	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/components"
	"gentlemind/internal/ui/theme"
	checkinview "gentlemind/internal/ui/views/checkin"
	meditationview "gentlemind/internal/ui/views/meditation"
	setupview "gentlemind/internal/ui/views/setup"
	statsview "gentlemind/internal/ui/views/stats"
	summaryview "gentlemind/internal/ui/views/summary"
	wisdomview "gentlemind/internal/ui/views/wisdom"
)

// ─── ports ───────────────────────────────────────────────────────────────────

type flowPort interface {
	SelectMood(mood string) error
	ShowStats() error
	StartSetup() error
	Back() error
	AdjustDuration(minutes, seconds string) error
	ApplyPreset(seconds int) error
	StartSession() error
	TogglePause() error
	Exit() error
	ViewProgress() error
	Reset()
	ToggleLanguage(ctx context.Context) error
	Snapshot() meditationdto.Snapshot
	Changes() <-chan struct{}
}

type moodPort interface {
	List(ctx context.Context, lang string) ([]mooddto.MoodOutput, error)
}

// ─── async messages ───────────────────────────────────────────────────────────

type changedMsg struct{}

type moodsLoadedMsg struct {
	lang  i18n.Language
	moods []mooddto.MoodOutput
	err   error
}

type languageToggledMsg struct{ err error }

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Select   key.Binding
	Back     key.Binding
	Stats    key.Binding
	Preset   key.Binding
	Pause    key.Binding
	Exit     key.Binding
	Reset    key.Binding
	Language key.Binding
	Help     key.Binding
	Palette  key.Binding
	Quit     key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "continue")),
		Back:     key.NewBinding(key.WithKeys("esc", "b"), key.WithHelp("esc", "back")),
		Stats:    key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "stats")),
		Preset:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "next preset")),
		Pause:    key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		Exit:     key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "exit session")),
		Reset:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "home")),
		Language: key.NewBinding(key.WithKeys("L"), key.WithHelp("L", "ไทย/EN")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette:  key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "command")),
		Quit:     key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Language, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Select, k.Back, k.Stats},
		{k.Preset, k.Pause, k.Exit},
		{k.Reset, k.Language, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. The flow controller owns all state; the
// model keeps a snapshot of it and refreshes that snapshot whenever the
// controller signals a change.
type Model struct {
	flow  flowPort
	moods moodPort

	checkinView checkinview.Model
	setupView   setupview.Model
	statsView   statsview.Model

	snap     meditationdto.Snapshot
	moodLang i18n.Language
	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	spinner  spinner.Model
	status   string
	width    int
	height   int
	quitting bool
}

func NewModel(flow flowPort, moods moodPort, calendar statsview.CalendarPort) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(theme.Sage)

	return Model{
		flow:        flow,
		moods:       moods,
		checkinView: checkinview.New(),
		setupView:   setupview.New(),
		statsView:   statsview.New(calendar),
		snap:        flow.Snapshot(),
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		spinner:     sp,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.waitForChange(),
		m.loadMoodsCmd(m.snap.Language),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		var cmd tea.Cmd
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 72))
		m.help.Width = m.width
		return m, nil

	case changedMsg:
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.waitForChange())

	case moodsLoadedMsg:
		if msg.err != nil {
			m.status = "moods: " + msg.err.Error()
			return m, nil
		}
		m.moodLang = msg.lang
		m.checkinView.SetMoods(msg.moods)
		m.statsView.SetMoods(msg.moods)
		return m, nil

	case languageToggledMsg:
		if msg.err != nil {
			m.status = "language: " + msg.err.Error()
		}
		return m, m.refresh()

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case statsview.LoadedMsg:
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd

	case setupview.DurationChangedMsg:
		m.apply(m.flow.AdjustDuration(msg.Minutes, msg.Seconds))
		return m, m.refresh()

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = ""
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		if key.Matches(msg, m.keys.Help) || msg.String() == "esc" {
			m.showHelp = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil
	case key.Matches(msg, m.keys.Palette):
		return m, m.palette.Open()
	case key.Matches(msg, m.keys.Language):
		return m, m.toggleLanguageCmd()
	case key.Matches(msg, m.keys.Reset):
		m.flow.Reset()
		m.status = ""
		return m, m.refresh()
	case key.Matches(msg, m.keys.Back):
		m.apply(m.flow.Back())
		return m, m.refresh()
	}

	switch m.snap.View {
	case meditationdomain.ViewMoodCheckin:
		return m.handleCheckinKey(msg)

	case meditationdomain.ViewWisdom:
		if key.Matches(msg, m.keys.Select) {
			m.apply(m.flow.StartSetup())
			return m, m.refresh()
		}

	case meditationdomain.ViewSetup:
		switch {
		case key.Matches(msg, m.keys.Select):
			m.apply(m.flow.StartSession())
			return m, m.refresh()
		case key.Matches(msg, m.keys.Preset):
			m.apply(m.flow.ApplyPreset(setupview.NextPreset(m.snap.Config.DurationSeconds)))
			cmd := m.refresh()
			return m, tea.Batch(cmd, m.setupView.Sync(m.snap.Config))
		}
		var cmd tea.Cmd
		m.setupView, cmd = m.setupView.Update(msg)
		return m, cmd

	case meditationdomain.ViewMeditation:
		switch {
		case key.Matches(msg, m.keys.Pause):
			m.apply(m.flow.TogglePause())
			return m, m.refresh()
		case key.Matches(msg, m.keys.Exit):
			m.apply(m.flow.Exit())
			return m, m.refresh()
		}

	case meditationdomain.ViewSummary:
		if key.Matches(msg, m.keys.Select) {
			m.apply(m.flow.ViewProgress())
			return m, m.refresh()
		}

	case meditationdomain.ViewStats:
		var cmd tea.Cmd
		m.statsView, cmd = m.statsView.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleCheckinKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Select):
		if mood, ok := m.checkinView.Selected(); ok {
			m.apply(m.flow.SelectMood(mood.ID))
		}
		return m, m.refresh()
	case key.Matches(msg, m.keys.Stats):
		m.apply(m.flow.ShowStats())
		return m, m.refresh()
	}
	if n, err := strconv.Atoi(msg.String()); err == nil {
		if mood, ok := m.checkinView.At(n); ok {
			m.apply(m.flow.SelectMood(mood.ID))
			return m, m.refresh()
		}
	}
	var cmd tea.Cmd
	m.checkinView, cmd = m.checkinView.Update(msg)
	return m, cmd
}

// apply records a failed action in the status bar. Illegal transitions are
// expected from stray keys and stay quiet.
func (m *Model) apply(err error) {
	switch {
	case err == nil:
		m.status = ""
	case errors.Is(err, apperrors.ErrInvalidTransition):
	default:
		m.status = err.Error()
	}
}

// refresh takes a new snapshot and starts whatever the new view needs.
func (m *Model) refresh() tea.Cmd {
	prev := m.snap
	m.snap = m.flow.Snapshot()

	var cmds []tea.Cmd
	if m.snap.View != prev.View {
		if prev.View == meditationdomain.ViewSetup {
			m.setupView.Blur()
		}
		switch m.snap.View {
		case meditationdomain.ViewSetup:
			cmds = append(cmds, m.setupView.Sync(m.snap.Config))
		case meditationdomain.ViewStats:
			cmds = append(cmds, m.statsView.Current())
		}
	}
	if m.snap.Language != m.moodLang {
		cmds = append(cmds, m.loadMoodsCmd(m.snap.Language))
	}
	return tea.Batch(cmds...)
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	header := m.renderHeader()
	statusBar := m.renderStatusBar()
	contentH := m.height - lipgloss.Height(header) - lipgloss.Height(statusBar)
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = theme.App.Width(m.width).Height(contentH).Render(m.activeView())
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, content, statusBar)
}

func (m Model) activeView() string {
	lang := m.snap.Language
	spin := m.spinner.View()
	switch m.snap.View {
	case meditationdomain.ViewMoodCheckin:
		return m.checkinView.View(lang)
	case meditationdomain.ViewWisdom:
		return wisdomview.View(lang, m.currentMood(), m.snap.Affirmation, m.snap.AffirmationLoading, spin, m.width)
	case meditationdomain.ViewSetup:
		return m.setupView.View(lang, m.snap.Config)
	case meditationdomain.ViewMeditation:
		return meditationview.View(m.snap, spin, m.width)
	case meditationdomain.ViewSummary:
		return summaryview.View(m.snap, m.currentMood(), spin, m.width)
	case meditationdomain.ViewStats:
		return m.statsView.View(lang, spin)
	}
	return ""
}

func (m Model) currentMood() mooddto.MoodOutput {
	if m.snap.Mood == nil {
		return mooddto.MoodOutput{}
	}
	if mood, ok := m.checkinView.Find(string(*m.snap.Mood)); ok {
		return mood
	}
	return mooddto.MoodOutput{ID: string(*m.snap.Mood), Label: string(*m.snap.Mood)}
}

func (m Model) renderHeader() string {
	lang := "EN"
	if m.snap.Language == i18n.Thai {
		lang = "ไทย"
	}
	left := theme.Title.Render("gentlemind") + theme.Muted.Render("  "+m.snap.View.String())
	right := theme.Hot.Render(lang)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right) + "\n"
}

func (m Model) renderStatusBar() string {
	left := theme.Hot.Render(m.status)
	right := m.help.View(m.keys)
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).
		Render(left+strings.Repeat(" ", gap)+right)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}

	switch parts[0] {
	case "mood":
		if len(parts) < 2 {
			m.status = "usage: mood <name>"
			return m, nil
		}
		m.apply(m.flow.SelectMood(parts[1]))

	case "duration":
		if len(parts) < 2 {
			m.status = "usage: duration <minutes> [seconds]"
			return m, nil
		}
		seconds := "0"
		if len(parts) >= 3 {
			seconds = parts[2]
		}
		m.apply(m.flow.AdjustDuration(parts[1], seconds))
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.setupView.Sync(m.snap.Config))

	case "preset":
		if len(parts) < 2 {
			m.status = "usage: preset <minutes>"
			return m, nil
		}
		minutes, err := strconv.Atoi(parts[1])
		if err != nil {
			m.status = fmt.Sprintf("invalid preset %q", parts[1])
			return m, nil
		}
		m.apply(m.flow.ApplyPreset(minutes * 60))
		cmd := m.refresh()
		return m, tea.Batch(cmd, m.setupView.Sync(m.snap.Config))

	case "start":
		m.apply(m.flow.StartSession())
	case "pause":
		m.apply(m.flow.TogglePause())
	case "exit":
		m.apply(m.flow.Exit())
	case "stats":
		m.apply(m.flow.ShowStats())
	case "lang":
		return m, m.toggleLanguageCmd()
	case "reset":
		m.flow.Reset()

	default:
		m.status = "unknown command: " + parts[0]
		return m, nil
	}
	return m, m.refresh()
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) waitForChange() tea.Cmd {
	ch := m.flow.Changes()
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return nil
		}
		return changedMsg{}
	}
}

func (m Model) loadMoodsCmd(lang i18n.Language) tea.Cmd {
	return func() tea.Msg {
		moods, err := m.moods.List(context.Background(), string(lang))
		return moodsLoadedMsg{lang: lang, moods: moods, err: err}
	}
}

func (m Model) toggleLanguageCmd() tea.Cmd {
	return func() tea.Msg {
		return languageToggledMsg{err: m.flow.ToggleLanguage(context.Background())}
	}
}
