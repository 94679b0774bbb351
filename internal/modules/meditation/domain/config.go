package domain

import (
	"strconv"
	"strings"
)

const (
	DefaultDurationSeconds = 5 * 60
	// MaxMinutes matches the three-digit minutes field on the setup screen.
	MaxMinutes = 999
)

// Presets are the quick-pick durations offered on the setup screen.
var Presets = []int{60, 300, 900, 1800, 2700}

// Config is the session length chosen on the setup screen.
type Config struct {
	DurationSeconds int
}

func DefaultConfig() Config {
	return Config{DurationSeconds: DefaultDurationSeconds}
}

// NewConfig clamps minutes to [0,MaxMinutes] and seconds to [0,59].
func NewConfig(minutes, seconds int) Config {
	if minutes < 0 {
		minutes = 0
	}
	if minutes > MaxMinutes {
		minutes = MaxMinutes
	}
	if seconds < 0 {
		seconds = 0
	}
	if seconds > 59 {
		seconds = 59
	}
	return Config{DurationSeconds: minutes*60 + seconds}
}

// ParseConfig builds a config from raw text fields. Anything that is not a
// whole number counts as zero.
func ParseConfig(minutesText, secondsText string) Config {
	return NewConfig(atoiOrZero(minutesText), atoiOrZero(secondsText))
}

func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}

func (c Config) Minutes() int { return c.DurationSeconds / 60 }
func (c Config) Seconds() int { return c.DurationSeconds % 60 }

// ScriptMinutes is the whole-minute length requested for a guided script.
func (c Config) ScriptMinutes() int {
	return (c.DurationSeconds + 59) / 60
}
