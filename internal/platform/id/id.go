package id

import (
	"strconv"
	"sync"

	"github.com/google/uuid"

	"gentlemind/internal/platform/clock"
)

// Generator creates opaque identifiers.
type Generator interface {
	New() string
}

type UUID struct{}

func (UUID) New() string {
	return uuid.NewString()
}

// Timestamp issues creation-time identifiers in Unix milliseconds. Two calls
// within the same millisecond still yield distinct, increasing values.
type Timestamp struct {
	clock clock.Clock

	mu   sync.Mutex
	last int64
}

type TimestampOption func(*Timestamp)

// After makes every issued identifier greater than ms, so a clock that moved
// backwards since ms was issued cannot produce a duplicate.
func After(ms int64) TimestampOption {
	return func(t *Timestamp) {
		if ms > t.last {
			t.last = ms
		}
	}
}

func NewTimestamp(clk clock.Clock, opts ...TimestampOption) *Timestamp {
	t := &Timestamp{clock: clk}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Timestamp) New() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	ms := t.clock.Now().UnixMilli()
	if ms <= t.last {
		ms = t.last + 1
	}
	t.last = ms
	return strconv.FormatInt(ms, 10)
}
