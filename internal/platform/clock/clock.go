package clock

import "time"

// Clock abstracts time to keep usecases deterministic in tests.
type Clock interface {
	Now() time.Time
}

type SystemClock struct{}

func (SystemClock) Now() time.Time {
	return time.Now().UTC()
}

// Ticker is a stoppable source of periodic ticks.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFactory creates tick sources so countdowns can be driven by a fake in tests.
type TickerFactory interface {
	NewTicker(d time.Duration) Ticker
}

type SystemTickers struct{}

func (SystemTickers) NewTicker(d time.Duration) Ticker {
	return systemTicker{t: time.NewTicker(d)}
}

type systemTicker struct {
	t *time.Ticker
}

func (s systemTicker) C() <-chan time.Time { return s.t.C }
func (s systemTicker) Stop()               { s.t.Stop() }
