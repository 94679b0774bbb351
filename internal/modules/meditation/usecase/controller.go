package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	journaldomain "gentlemind/internal/modules/journal/domain"
	"gentlemind/internal/modules/meditation/domain"
	meditationdto "gentlemind/internal/modules/meditation/dto"
	meditationin "gentlemind/internal/modules/meditation/port/in"
	meditationout "gentlemind/internal/modules/meditation/port/out"
	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/clock"
	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/platform/i18n"
	"gentlemind/internal/platform/id"
	"gentlemind/internal/platform/logging"
)

var _ meditationin.Usecase = (*Controller)(nil)

type Deps struct {
	Log         meditationout.SessionLog
	Wisdom      meditationout.Wisdom
	Narrator    meditationout.Narrator
	Preferences meditationout.Preferences
	Clock       clock.Clock
	Tickers     clock.TickerFactory
	RecordIDs   id.Generator
	Tokens      id.Generator
	Logger      logging.Logger
}

// Controller owns the flow state. Every mutation happens under mu, whether it
// comes from the UI, a tick or a finished wisdom call, so state changes are
// applied one at a time in arrival order.
type Controller struct {
	log       meditationout.SessionLog
	wisdom    meditationout.Wisdom
	narrator  meditationout.Narrator
	prefs     meditationout.Preferences
	clock     clock.Clock
	tickers   clock.TickerFactory
	recordIDs id.Generator
	tokens    id.Generator
	logger    logging.Logger

	ctx     context.Context
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	changes chan struct{}

	mu          sync.Mutex
	closed      bool
	view        domain.View
	mood        *mooddomain.Mood
	lang        i18n.Language
	config      domain.Config
	timer       domain.Timer
	checkin     *checkin
	affirmation string
	session     *session
	lastRecord  *journaldomain.Record
	records     []journaldomain.Record
}

// checkin is one mood selection. Its token guards the affirmation result.
type checkin struct {
	token   string
	cancel  context.CancelFunc
	loading bool
}

// session is one started meditation. Results of calls made for it are only
// applied while its token is still the current one.
type session struct {
	token    string
	cancel   context.CancelFunc
	mood     mooddomain.Mood
	lang     i18n.Language
	duration int
	elapsed  int

	ticker   clock.Ticker
	tickStop chan struct{}
	tickGen  int

	script       string
	scriptReady  bool
	spoken       bool
	closing      string
	closingReady bool
	completed    bool
}

func NewController(deps Deps) *Controller {
	if deps.Clock == nil {
		deps.Clock = clock.SystemClock{}
	}
	if deps.Tickers == nil {
		deps.Tickers = clock.SystemTickers{}
	}
	if deps.RecordIDs == nil {
		deps.RecordIDs = id.NewTimestamp(deps.Clock)
	}
	if deps.Tokens == nil {
		deps.Tokens = id.UUID{}
	}
	if deps.Logger == nil {
		deps.Logger = logging.Nop()
	}
	if deps.Narrator == nil {
		deps.Narrator = silentNarrator{}
	}

	lang := i18n.Default
	if deps.Preferences != nil {
		lang = deps.Preferences.Language()
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &Controller{
		log:       deps.Log,
		wisdom:    deps.Wisdom,
		narrator:  deps.Narrator,
		prefs:     deps.Preferences,
		clock:     deps.Clock,
		tickers:   deps.Tickers,
		recordIDs: deps.RecordIDs,
		tokens:    deps.Tokens,
		logger:    deps.Logger,
		ctx:       ctx,
		cancel:    cancel,
		changes:   make(chan struct{}, 1),
		view:      domain.ViewMoodCheckin,
		lang:      lang,
		config:    domain.DefaultConfig(),
		records:   deps.Log.Records(),
	}
}

// Changes delivers a signal after state changes. Signals coalesce, so a
// reader should take a fresh Snapshot each time.
func (c *Controller) Changes() <-chan struct{} {
	return c.changes
}

func (c *Controller) SelectMood(raw string) error {
	m, err := mooddomain.Parse(raw)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("select mood", domain.ViewMoodCheckin); err != nil {
		return err
	}

	c.cancelCheckinLocked()
	ctx, cancel := context.WithCancel(c.ctx)
	ci := &checkin{token: c.tokens.New(), cancel: cancel, loading: true}
	c.checkin = ci
	c.mood = &m
	c.affirmation = ""
	c.view = domain.ViewWisdom

	c.wg.Add(1)
	go c.fetchAffirmation(ctx, ci.token, m, c.lang)

	c.logger.Infof(logging.TypeFlow, "Mood check-in: %s", m)
	c.notifyLocked()
	return nil
}

func (c *Controller) ShowStats() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("show stats", domain.ViewMoodCheckin); err != nil {
		return err
	}
	c.view = domain.ViewStats
	c.notifyLocked()
	return nil
}

func (c *Controller) StartSetup() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("start setup", domain.ViewWisdom); err != nil {
		return err
	}
	c.view = domain.ViewSetup
	c.notifyLocked()
	return nil
}

// Back returns from the affirmation and stats screens to the check-in, and
// from setup to the affirmation.
func (c *Controller) Back() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("back", domain.ViewWisdom, domain.ViewSetup, domain.ViewStats); err != nil {
		return err
	}
	if c.view == domain.ViewSetup {
		c.view = domain.ViewWisdom
	} else {
		c.resetLocked()
	}
	c.notifyLocked()
	return nil
}

func (c *Controller) AdjustDuration(input meditationdto.DurationInput) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("adjust duration", domain.ViewSetup); err != nil {
		return err
	}
	c.config = domain.ParseConfig(input.Minutes, input.Seconds)
	c.notifyLocked()
	return nil
}

func (c *Controller) ApplyPreset(seconds int) error {
	if seconds < 0 {
		return fmt.Errorf("%w: negative preset %d", apperrors.ErrInvalidInput, seconds)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("apply preset", domain.ViewSetup); err != nil {
		return err
	}
	c.config = domain.NewConfig(seconds/60, seconds%60)
	c.notifyLocked()
	return nil
}

// StartSession begins the countdown and asks for the guided script and the
// closing message without waiting for either.
func (c *Controller) StartSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("start session", domain.ViewSetup); err != nil {
		return err
	}
	c.endSessionLocked()

	mood := mooddomain.Normal
	if c.mood != nil {
		mood = *c.mood
	}
	ctx, cancel := context.WithCancel(c.ctx)
	s := &session{
		token:    c.tokens.New(),
		cancel:   cancel,
		mood:     mood,
		lang:     c.lang,
		duration: c.config.DurationSeconds,
	}
	c.session = s
	c.view = domain.ViewMeditation
	c.logger.Infof(logging.TypeFlow, "Session %s started: %ds, mood %s", s.token, s.duration, mood)

	c.wg.Add(2)
	go c.fetchScript(ctx, s.token, mood, c.config.ScriptMinutes(), s.lang)
	go c.fetchClosing(ctx, s.token, mood, s.lang)

	if c.timer.Start(s.duration) {
		c.completeLocked(s)
	} else {
		c.startTickerLocked(s)
	}
	c.notifyLocked()
	return nil
}

// TogglePause pauses or resumes the countdown together with narration.
func (c *Controller) TogglePause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("toggle pause", domain.ViewMeditation); err != nil {
		return err
	}
	s := c.session
	if s == nil || s.completed {
		return fmt.Errorf("%w: no running session", apperrors.ErrInvalidTransition)
	}

	c.timer.Toggle()
	if c.timer.Running() {
		c.startTickerLocked(s)
		switch {
		case s.spoken:
			c.narrator.Resume()
		case s.scriptReady:
			c.speakLocked(s)
		}
	} else {
		c.stopTickerLocked(s)
		if s.spoken {
			c.narrator.Pause()
		}
	}
	c.notifyLocked()
	return nil
}

// Exit abandons the running session without logging it.
func (c *Controller) Exit() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("exit", domain.ViewMeditation); err != nil {
		return err
	}
	if s := c.session; s != nil {
		c.logger.Infof(logging.TypeFlow, "Session %s exited with %ds left", s.token, c.timer.Remaining())
	}
	c.timer.Stop()
	c.endSessionLocked()
	c.narrator.CancelAll()
	c.view = domain.ViewSetup
	c.notifyLocked()
	return nil
}

func (c *Controller) ViewProgress() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.requireView("view progress", domain.ViewSummary); err != nil {
		return err
	}
	c.view = domain.ViewStats
	c.notifyLocked()
	return nil
}

// Reset goes back to the check-in from anywhere.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.resetLocked()
	c.notifyLocked()
}

// ToggleLanguage switches language right away; the returned error only
// reports that the choice could not be saved.
func (c *Controller) ToggleLanguage(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return fmt.Errorf("%w: controller closed", apperrors.ErrInvalidTransition)
	}
	c.lang = c.lang.Other()
	lang := c.lang
	c.notifyLocked()
	c.mu.Unlock()

	if c.prefs == nil {
		return nil
	}
	if err := c.prefs.SetLanguage(ctx, lang); err != nil {
		c.logger.Warnf(logging.TypeStorage, "Saving language %s failed: %s", lang, err)
		return err
	}
	return nil
}

func (c *Controller) Snapshot() meditationdto.Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	snap := meditationdto.Snapshot{
		View:        c.view,
		Language:    c.lang,
		Affirmation: c.affirmation,
		Config:      c.config,
		Remaining:   c.timer.Remaining(),
		Running:     c.timer.Running(),
		Records:     append([]journaldomain.Record(nil), c.records...),
	}
	if c.mood != nil {
		m := *c.mood
		snap.Mood = &m
	}
	if c.checkin != nil {
		snap.AffirmationLoading = c.checkin.loading
	}
	if s := c.session; s != nil {
		snap.Elapsed = s.elapsed
		snap.Script = s.script
		snap.ScriptLoading = !s.scriptReady
		snap.Closing = s.closing
		snap.ClosingLoading = !s.closingReady
	}
	if c.lastRecord != nil {
		r := *c.lastRecord
		snap.LastRecord = &r
	}
	snap.Breath = domain.BreathPhaseAt(snap.Elapsed, snap.Running && c.view == domain.ViewMeditation)
	return snap
}

// Close stops every tick source and pending call and waits for them.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	c.cancelCheckinLocked()
	c.timer.Stop()
	c.endSessionLocked()
	c.narrator.CancelAll()
	c.cancel()
	c.mu.Unlock()

	c.wg.Wait()
}

func (c *Controller) requireView(action string, allowed ...domain.View) error {
	if c.closed {
		return fmt.Errorf("%w: %s after close", apperrors.ErrInvalidTransition, action)
	}
	for _, v := range allowed {
		if c.view == v {
			return nil
		}
	}
	return fmt.Errorf("%w: cannot %s from %s", apperrors.ErrInvalidTransition, action, c.view)
}

func (c *Controller) resetLocked() {
	c.cancelCheckinLocked()
	c.mood = nil
	c.affirmation = ""
	c.timer.Stop()
	c.endSessionLocked()
	c.narrator.CancelAll()
	c.lastRecord = nil
	c.view = domain.ViewMoodCheckin
}

func (c *Controller) cancelCheckinLocked() {
	if c.checkin == nil {
		return
	}
	c.checkin.cancel()
	c.checkin = nil
}

func (c *Controller) endSessionLocked() {
	s := c.session
	if s == nil {
		return
	}
	c.stopTickerLocked(s)
	s.cancel()
	c.session = nil
}

func (c *Controller) startTickerLocked(s *session) {
	c.stopTickerLocked(s)
	s.tickGen++
	t := c.tickers.NewTicker(time.Second)
	stop := make(chan struct{})
	s.ticker, s.tickStop = t, stop

	c.wg.Add(1)
	go c.runTicks(s.token, s.tickGen, t, stop)
}

func (c *Controller) stopTickerLocked(s *session) {
	if s.ticker == nil {
		return
	}
	s.ticker.Stop()
	close(s.tickStop)
	s.ticker, s.tickStop = nil, nil
}

func (c *Controller) runTicks(token string, gen int, t clock.Ticker, stop <-chan struct{}) {
	defer c.wg.Done()
	for {
		select {
		case <-stop:
			return
		case <-t.C():
			if !c.tick(token, gen) {
				return
			}
		}
	}
}

// tick applies one second of running time and reports whether the loop that
// delivered it should keep going.
func (c *Controller) tick(token string, gen int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if s == nil || s.token != token || s.tickGen != gen || s.completed || !c.timer.Running() {
		return false
	}
	s.elapsed++
	if c.timer.Tick() {
		c.completeLocked(s)
		c.notifyLocked()
		return false
	}
	c.notifyLocked()
	return true
}

// completeLocked logs the session and moves to the summary. It runs once per
// session: the completed flag stops every later tick.
func (c *Controller) completeLocked(s *session) {
	s.completed = true
	c.stopTickerLocked(s)
	c.timer.Stop()
	c.narrator.CancelAll()

	record := journaldomain.NewRecord(c.recordIDs.New(), c.clock.Now(), s.duration, &s.mood)
	records, err := c.log.Append(context.WithoutCancel(c.ctx), record)
	if err != nil {
		c.logger.Errorf(logging.TypeStorage, "Saving session %s failed: %s", record.ID, err)
		if records == nil {
			records = append(append([]journaldomain.Record(nil), c.records...), record)
		}
	}
	c.records = records
	c.lastRecord = &record
	c.view = domain.ViewSummary
	c.logger.Infof(logging.TypeFlow, "Session %s completed: %.2f min, mood %s", s.token, record.DurationMinutes, record.MoodBefore)
}

func (c *Controller) speakLocked(s *session) {
	c.narrator.Speak(s.script, s.lang.Tag())
	s.spoken = true
}

func (c *Controller) fetchAffirmation(ctx context.Context, token string, m mooddomain.Mood, lang i18n.Language) {
	defer c.wg.Done()
	text := c.wisdom.Affirmation(ctx, m, lang)

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.checkin == nil || c.checkin.token != token {
		c.logger.Debugf(logging.TypeWisdom, "Dropping affirmation for stale check-in %s", token)
		return
	}
	c.affirmation = text
	c.checkin.loading = false
	c.notifyLocked()
}

func (c *Controller) fetchScript(ctx context.Context, token string, m mooddomain.Mood, minutes int, lang i18n.Language) {
	defer c.wg.Done()
	text := c.wisdom.GuidedScript(ctx, m, minutes, lang)

	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if s == nil || s.token != token {
		c.logger.Debugf(logging.TypeWisdom, "Dropping guided script for stale session %s", token)
		return
	}
	s.script = text
	s.scriptReady = true
	if !s.completed && c.view == domain.ViewMeditation && c.timer.Running() {
		c.speakLocked(s)
	}
	c.notifyLocked()
}

func (c *Controller) fetchClosing(ctx context.Context, token string, m mooddomain.Mood, lang i18n.Language) {
	defer c.wg.Done()
	text := c.wisdom.ClosingMessage(ctx, m, lang)

	c.mu.Lock()
	defer c.mu.Unlock()
	s := c.session
	if s == nil || s.token != token {
		c.logger.Debugf(logging.TypeWisdom, "Dropping closing message for stale session %s", token)
		return
	}
	s.closing = text
	s.closingReady = true
	c.notifyLocked()
}

func (c *Controller) notifyLocked() {
	select {
	case c.changes <- struct{}{}:
	default:
	}
}

type silentNarrator struct{}

func (silentNarrator) Speak(string, string) {}
func (silentNarrator) Pause()               {}
func (silentNarrator) Resume()              {}
func (silentNarrator) CancelAll()           {}
