package stats

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	calendardto "gentlemind/internal/modules/calendar/dto"
	mooddto "gentlemind/internal/modules/mood/dto"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type CalendarPort interface {
	Month(ctx context.Context, year, month int) (calendardto.MonthOutput, error)
	Trend(ctx context.Context, days int) (calendardto.TrendOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type LoadedMsg struct {
	Month calendardto.MonthOutput
	Trend calendardto.TrendOutput
	Err   error
}

// ─── model ───────────────────────────────────────────────────────────────────

const trendDays = 7

var (
	cellStyle   = lipgloss.NewStyle().Width(6).Align(lipgloss.Center)
	todayStyle  = cellStyle.Foreground(theme.Peach).Bold(true)
	markedStyle = cellStyle.Foreground(theme.Text)
	emptyStyle  = cellStyle.Foreground(theme.Surface1)
)

// Model is the mood calendar. Year and month zero mean "current month" until
// the first load answers.
type Model struct {
	port    CalendarPort
	moods   map[string]mooddto.MoodOutput
	year    int
	month   int
	data    calendardto.MonthOutput
	trend   calendardto.TrendOutput
	loading bool
	err     error
}

func New(port CalendarPort) Model {
	return Model{port: port, moods: map[string]mooddto.MoodOutput{}}
}

func (m *Model) SetMoods(moods []mooddto.MoodOutput) {
	m.moods = make(map[string]mooddto.MoodOutput, len(moods))
	for _, mood := range moods {
		m.moods[mood.ID] = mood
	}
}

// Load fetches the shown month again, e.g. after a session was logged.
func (m *Model) Load() tea.Cmd {
	m.loading = true
	return m.loadCmd(m.year, m.month)
}

// Current jumps back to the current month.
func (m *Model) Current() tea.Cmd {
	m.year, m.month = 0, 0
	return m.Load()
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case LoadedMsg:
		m.loading = false
		m.err = msg.Err
		if msg.Err == nil {
			m.data = msg.Month
			m.trend = msg.Trend
			m.year, m.month = msg.Month.Year, msg.Month.Month
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			return m, m.shift(-1)
		case "right", "l":
			return m, m.shift(1)
		case "t":
			return m, m.Current()
		}
	}
	return m, nil
}

func (m *Model) shift(delta int) tea.Cmd {
	if m.year == 0 {
		return nil
	}
	t := time.Date(m.year, time.Month(m.month)+time.Month(delta), 1, 0, 0, 0, 0, time.UTC)
	m.year, m.month = t.Year(), int(t.Month())
	return m.Load()
}

func (m Model) loadCmd(year, month int) tea.Cmd {
	return func() tea.Msg {
		if m.port == nil {
			return LoadedMsg{Err: fmt.Errorf("calendar not configured")}
		}
		out, err := m.port.Month(context.Background(), year, month)
		if err != nil {
			return LoadedMsg{Err: err}
		}
		trend, err := m.port.Trend(context.Background(), trendDays)
		return LoadedMsg{Month: out, Trend: trend, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View(lang i18n.Language, spin string) string {
	header := theme.Title.Render(i18n.T(lang, "statsTitle"))
	if m.loading && m.data.Year == 0 {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", spin+" "+theme.Muted.Render(i18n.T(lang, "loading")))
	}
	if m.err != nil {
		return lipgloss.JoinVertical(lipgloss.Left, header, "", theme.Hot.Render(m.err.Error()))
	}

	totals := lipgloss.JoinHorizontal(lipgloss.Top,
		theme.Card.Render(theme.Muted.Render(i18n.T(lang, "totalTime"))+"\n"+
			theme.Hot.Render(fmt.Sprintf("%.0f %s", m.data.TotalMinutes, i18n.T(lang, "mins")))),
		" ",
		theme.Card.Render(theme.Muted.Render(i18n.T(lang, "totalSessions"))+"\n"+
			theme.Hot.Render(fmt.Sprintf("%d %s", m.data.TotalSessions, i18n.T(lang, "times")))),
	)

	title := fmt.Sprintf("‹  %s %d  ›", i18n.MonthName(lang, m.data.Month), m.data.Year)
	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		totals,
		"",
		theme.Title.Render(title),
		m.renderGrid(lang),
		"",
		theme.Muted.Render(i18n.T(lang, "last7Days")),
		m.renderTrend(lang),
		"",
		theme.Muted.Render("←/→  month   t  today   esc  "+i18n.T(lang, "backHome")),
	)
}

func (m Model) renderGrid(lang i18n.Language) string {
	var rows []string
	week := make([]string, 0, 7)
	for _, name := range i18n.Weekdays(lang) {
		week = append(week, theme.Muted.Width(6).Align(lipgloss.Center).Render(name))
	}
	rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))

	week = week[:0]
	flush := func() {
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, week...))
		week = week[:0]
	}
	for i := 0; i < m.data.Leading; i++ {
		week = append(week, cellStyle.Render(""))
	}
	for _, d := range m.data.Days {
		week = append(week, m.renderDay(d))
		if len(week) == 7 {
			flush()
		}
	}
	if len(week) > 0 {
		flush()
	}
	return strings.Join(rows, "\n")
}

func (m Model) renderDay(d calendardto.DayOutput) string {
	label := fmt.Sprintf("%2d", d.Day)
	style := emptyStyle
	if d.Sessions > 0 {
		style = markedStyle
		if mood, ok := m.moods[d.LastMood]; ok {
			label = mood.Emoji + label
		}
	}
	if d.Today {
		style = todayStyle
	}
	return style.Render(label)
}

func (m Model) renderTrend(lang i18n.Language) string {
	const barWidth = 20
	peak := 0.0
	for _, d := range m.trend.Days {
		if d.TotalMinutes > peak {
			peak = d.TotalMinutes
		}
	}
	names := i18n.Weekdays(lang)
	lines := make([]string, 0, len(m.trend.Days))
	for _, d := range m.trend.Days {
		name := d.Date
		if t, err := time.Parse("2006-01-02", d.Date); err == nil {
			name = names[t.Weekday()]
		}
		n := 0
		if peak > 0 {
			n = int(d.TotalMinutes / peak * barWidth)
		}
		if d.TotalMinutes > 0 && n == 0 {
			n = 1
		}
		lines = append(lines, fmt.Sprintf("%-4s %s %s",
			name,
			theme.Calm.Render(strings.Repeat("▇", n))+strings.Repeat(" ", barWidth-n),
			theme.Muted.Render(fmt.Sprintf("%.1f %s", d.TotalMinutes, i18n.T(lang, "mins")))))
	}
	return strings.Join(lines, "\n")
}
