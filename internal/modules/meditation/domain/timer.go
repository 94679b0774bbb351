package domain

// Timer is the countdown of one session. It holds no clock; the owner calls
// Tick once per elapsed second.
type Timer struct {
	remaining int
	running   bool
}

// Start arms the countdown and reports whether it completed immediately,
// which happens for a zero-length session.
func (t *Timer) Start(durationSeconds int) bool {
	if durationSeconds < 0 {
		durationSeconds = 0
	}
	t.remaining = durationSeconds
	if durationSeconds == 0 {
		t.running = false
		return true
	}
	t.running = true
	return false
}

func (t *Timer) Toggle() {
	t.running = !t.running
}

func (t *Timer) Stop() {
	t.running = false
}

// Tick counts down one second while running. It returns true exactly when
// this tick brought the countdown to zero.
func (t *Timer) Tick() bool {
	if !t.running || t.remaining <= 0 {
		return false
	}
	t.remaining--
	if t.remaining == 0 {
		t.running = false
		return true
	}
	return false
}

func (t *Timer) Remaining() int { return t.remaining }
func (t *Timer) Running() bool  { return t.running }
