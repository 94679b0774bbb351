package testutil

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/clock"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/platform/logging"
)

// MockLogger implements logging.Logger and records calls.
type MockLogger struct {
	mu   sync.Mutex
	Logs []LogEntry
}

type LogEntry struct {
	Level  string
	Type   logging.TypeEnum
	Format string
	Args   []interface{}
}

func (m *MockLogger) record(level string, t logging.TypeEnum, format string, args ...interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Logs = append(m.Logs, LogEntry{Level: level, Type: t, Format: format, Args: args})
}

func (m *MockLogger) Errorf(t logging.TypeEnum, format string, args ...interface{}) {
	m.record("error", t, format, args...)
}
func (m *MockLogger) Warnf(t logging.TypeEnum, format string, args ...interface{}) {
	m.record("warn", t, format, args...)
}
func (m *MockLogger) Infof(t logging.TypeEnum, format string, args ...interface{}) {
	m.record("info", t, format, args...)
}
func (m *MockLogger) Debugf(t logging.TypeEnum, format string, args ...interface{}) {
	m.record("debug", t, format, args...)
}
func (m *MockLogger) Close() {}

// Count returns how many entries were logged at level.
func (m *MockLogger) Count(level string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, e := range m.Logs {
		if e.Level == level {
			n++
		}
	}
	return n
}

// MemoryKV is an in-memory key-value store with injectable failures.
type MemoryKV struct {
	mu     sync.Mutex
	Data   map[string]string
	GetErr error
	SetErr error
	Sets   int
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{Data: make(map[string]string)}
}

func (m *MemoryKV) Get(_ context.Context, key string) (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.Data[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.SetErr != nil {
		return m.SetErr
	}
	m.Sets++
	m.Data[key] = value
	return nil
}

func (m *MemoryKV) Close() error { return nil }

// FakeClock returns a settable instant.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func NewFakeClock(now time.Time) *FakeClock {
	return &FakeClock{now: now}
}

func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// FakeTicker delivers ticks only when Fire is called.
type FakeTicker struct {
	ch       chan time.Time
	stopped  chan struct{}
	stopOnce sync.Once
}

func (t *FakeTicker) C() <-chan time.Time { return t.ch }

func (t *FakeTicker) Stop() {
	t.stopOnce.Do(func() { close(t.stopped) })
}

// Fire hands one tick to the consumer. It reports false when the ticker was
// stopped before the tick could be delivered.
func (t *FakeTicker) Fire() bool {
	select {
	case <-t.stopped:
		return false
	default:
	}
	select {
	case t.ch <- time.Now():
		return true
	case <-t.stopped:
		return false
	case <-time.After(2 * time.Second):
		return false
	}
}

func (t *FakeTicker) Stopped() bool {
	select {
	case <-t.stopped:
		return true
	default:
		return false
	}
}

// FakeTickers is a clock.TickerFactory that remembers every ticker it made.
type FakeTickers struct {
	mu      sync.Mutex
	tickers []*FakeTicker
}

func (f *FakeTickers) NewTicker(time.Duration) clock.Ticker {
	f.mu.Lock()
	defer f.mu.Unlock()
	t := &FakeTicker{ch: make(chan time.Time), stopped: make(chan struct{})}
	f.tickers = append(f.tickers, t)
	return t
}

// Last returns the most recently created ticker, or nil.
func (f *FakeTickers) Last() *FakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tickers) == 0 {
		return nil
	}
	return f.tickers[len(f.tickers)-1]
}

func (f *FakeTickers) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// SequenceIDs yields id-1, id-2, ...
type SequenceIDs struct {
	mu     sync.Mutex
	Prefix string
	n      int
}

func (s *SequenceIDs) New() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	prefix := s.Prefix
	if prefix == "" {
		prefix = "id"
	}
	return fmt.Sprintf("%s-%d", prefix, s.n)
}

// NarratorCall is one recorded narrator interaction.
type NarratorCall struct {
	Op   string
	Text string
	Tag  string
}

// RecordingNarrator records every call in order.
type RecordingNarrator struct {
	mu    sync.Mutex
	Calls []NarratorCall
}

func (n *RecordingNarrator) add(c NarratorCall) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Calls = append(n.Calls, c)
}

func (n *RecordingNarrator) Speak(text, tag string) { n.add(NarratorCall{Op: "speak", Text: text, Tag: tag}) }
func (n *RecordingNarrator) Pause()                 { n.add(NarratorCall{Op: "pause"}) }
func (n *RecordingNarrator) Resume()                { n.add(NarratorCall{Op: "resume"}) }
func (n *RecordingNarrator) CancelAll()             { n.add(NarratorCall{Op: "cancel"}) }

// Ops returns the recorded operation names.
func (n *RecordingNarrator) Ops() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	ops := make([]string, 0, len(n.Calls))
	for _, c := range n.Calls {
		ops = append(ops, c.Op)
	}
	return ops
}

func (n *RecordingNarrator) Spoken() []NarratorCall {
	n.mu.Lock()
	defer n.mu.Unlock()
	var out []NarratorCall
	for _, c := range n.Calls {
		if c.Op == "speak" {
			out = append(out, c)
		}
	}
	return out
}

// StubWisdom answers immediately unless a gate is installed, in which case
// each call blocks until the gate is released or its context ends.
type StubWisdom struct {
	mu          sync.Mutex
	Affirm      string
	Script      string
	Closing     string
	gate        chan struct{}
	ScriptCalls []int
}

func NewStubWisdom() *StubWisdom {
	return &StubWisdom{Affirm: "affirmation", Script: "script", Closing: "closing"}
}

// Hold makes subsequent calls block until Release.
func (s *StubWisdom) Hold() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gate = make(chan struct{})
}

func (s *StubWisdom) Release() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gate != nil {
		close(s.gate)
		s.gate = nil
	}
}

func (s *StubWisdom) wait(ctx context.Context) {
	s.mu.Lock()
	gate := s.gate
	s.mu.Unlock()
	if gate == nil {
		return
	}
	select {
	case <-gate:
	case <-ctx.Done():
	}
}

func (s *StubWisdom) text(v *string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *v
}

func (s *StubWisdom) Affirmation(ctx context.Context, m mooddomain.Mood, lang i18n.Language) string {
	s.wait(ctx)
	return fmt.Sprintf("%s:%s:%s", s.text(&s.Affirm), m, lang)
}

func (s *StubWisdom) GuidedScript(ctx context.Context, m mooddomain.Mood, minutes int, lang i18n.Language) string {
	s.mu.Lock()
	s.ScriptCalls = append(s.ScriptCalls, minutes)
	s.mu.Unlock()
	s.wait(ctx)
	return fmt.Sprintf("%s:%s:%s", s.text(&s.Script), m, lang)
}

func (s *StubWisdom) ClosingMessage(ctx context.Context, m mooddomain.Mood, lang i18n.Language) string {
	s.wait(ctx)
	return fmt.Sprintf("%s:%s:%s", s.text(&s.Closing), m, lang)
}

// SetTexts swaps the canned answers, e.g. between check-ins.
func (s *StubWisdom) SetTexts(affirm, script, closing string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Affirm, s.Script, s.Closing = affirm, script, closing
}

// ErrBoom is a generic injected failure.
var ErrBoom = errors.New("boom")
