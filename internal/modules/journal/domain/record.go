package domain

import (
	"fmt"
	"math"
	"time"

	json "github.com/goccy/go-json"

	mooddomain "gentlemind/internal/modules/mood/domain"
)

const SchemaVersion = 1

// DateLayout is the stored form of Record.Date: UTC, always three fraction digits.
const DateLayout = "2006-01-02T15:04:05.000Z07:00"

// Record is one completed meditation. It is never modified after creation.
type Record struct {
	ID              string           `json:"id" yaml:"id"`
	Date            time.Time        `json:"date" yaml:"date"`
	DurationMinutes float64          `json:"durationMinutes" yaml:"duration_minutes"`
	MoodBefore      mooddomain.Mood  `json:"moodBefore" yaml:"mood_before"`
	MoodAfter       *mooddomain.Mood `json:"moodAfter,omitempty" yaml:"mood_after,omitempty"`
}

// NewRecord builds the record for a session configured to last durationSeconds.
// A nil mood is logged as Normal.
func NewRecord(id string, at time.Time, durationSeconds int, before *mooddomain.Mood) Record {
	mood := mooddomain.Normal
	if before != nil {
		mood = *before
	}
	return Record{
		ID:              id,
		Date:            at.UTC().Truncate(time.Millisecond),
		DurationMinutes: RoundMinutes(durationSeconds),
		MoodBefore:      mood,
	}
}

// Validate reports whether a record read from outside the log is usable.
func (r Record) Validate() error {
	switch {
	case r.ID == "":
		return fmt.Errorf("record without id")
	case r.Date.IsZero():
		return fmt.Errorf("record %s without date", r.ID)
	case r.DurationMinutes < 0:
		return fmt.Errorf("record %s has negative duration", r.ID)
	}
	if err := r.MoodBefore.Validate(); err != nil {
		return fmt.Errorf("record %s: %w", r.ID, err)
	}
	if r.MoodAfter != nil {
		if err := r.MoodAfter.Validate(); err != nil {
			return fmt.Errorf("record %s: %w", r.ID, err)
		}
	}
	return nil
}

// RoundMinutes converts seconds to minutes rounded to two decimals.
func RoundMinutes(seconds int) float64 {
	if seconds <= 0 {
		return 0
	}
	return math.Round(float64(seconds)/60*100) / 100
}

type recordJSON struct {
	ID              string           `json:"id"`
	Date            string           `json:"date"`
	DurationMinutes float64          `json:"durationMinutes"`
	MoodBefore      mooddomain.Mood  `json:"moodBefore"`
	MoodAfter       *mooddomain.Mood `json:"moodAfter,omitempty"`
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		ID:              r.ID,
		Date:            r.Date.UTC().Format(DateLayout),
		DurationMinutes: r.DurationMinutes,
		MoodBefore:      r.MoodBefore,
		MoodAfter:       r.MoodAfter,
	})
}

// UnmarshalJSON accepts any RFC 3339 date, with or without fraction digits.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	var at time.Time
	if raw.Date != "" {
		parsed, err := time.Parse(time.RFC3339Nano, raw.Date)
		if err != nil {
			return fmt.Errorf("record %s date: %w", raw.ID, err)
		}
		at = parsed.UTC()
	}
	*r = Record{
		ID:              raw.ID,
		Date:            at,
		DurationMinutes: raw.DurationMinutes,
		MoodBefore:      raw.MoodBefore,
		MoodAfter:       raw.MoodAfter,
	}
	return nil
}
