package domain

import (
	"time"

	journaldomain "gentlemind/internal/modules/journal/domain"
	mooddomain "gentlemind/internal/modules/mood/domain"
)

const dateKey = "2006-01-02"

// DaySummary is everything logged on one local calendar date.
type DaySummary struct {
	Date         string
	TotalMinutes float64
	Sessions     int
	LastMood     mooddomain.Mood
}

// Day is one cell of a month grid.
type Day struct {
	Day int
	DaySummary
	Today bool
}

func (d Day) Marked() bool { return d.Sessions > 0 }

// Month is the stats screen for one calendar month plus all-time totals.
type Month struct {
	Year          int
	Month         time.Month
	Leading       int
	Days          []Day
	TotalMinutes  float64
	TotalSessions int
}

// Cells lays the month out Sunday-first: Leading nil cells, then one per day.
func (m Month) Cells() []*Day {
	cells := make([]*Day, m.Leading, m.Leading+len(m.Days))
	for i := range m.Days {
		cells = append(cells, &m.Days[i])
	}
	return cells
}

// Daily groups records by local date. Later records in log order win the
// mood of their day.
func Daily(records []journaldomain.Record, loc *time.Location) map[string]DaySummary {
	if loc == nil {
		loc = time.Local
	}
	out := make(map[string]DaySummary)
	for _, r := range records {
		key := r.Date.In(loc).Format(dateKey)
		d := out[key]
		d.Date = key
		d.TotalMinutes += r.DurationMinutes
		d.Sessions++
		d.LastMood = r.MoodBefore
		out[key] = d
	}
	return out
}

// Aggregate builds the grid for year/month in loc. now marks today's cell.
func Aggregate(records []journaldomain.Record, year int, month time.Month, loc *time.Location, now time.Time) Month {
	if loc == nil {
		loc = time.Local
	}
	first := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	days := first.AddDate(0, 1, -1).Day()
	today := now.In(loc).Format(dateKey)
	daily := Daily(records, loc)

	m := Month{
		Year:    year,
		Month:   month,
		Leading: int(first.Weekday()),
		Days:    make([]Day, 0, days),
	}
	for day := 1; day <= days; day++ {
		key := time.Date(year, month, day, 0, 0, 0, 0, loc).Format(dateKey)
		summary := daily[key]
		summary.Date = key
		m.Days = append(m.Days, Day{Day: day, DaySummary: summary, Today: key == today})
	}
	for _, r := range records {
		m.TotalMinutes += r.DurationMinutes
	}
	m.TotalSessions = len(records)
	return m
}

// LastDays returns the n dates ending today, oldest first.
func LastDays(records []journaldomain.Record, now time.Time, n int, loc *time.Location) []DaySummary {
	if loc == nil {
		loc = time.Local
	}
	if n <= 0 {
		return []DaySummary{}
	}
	daily := Daily(records, loc)
	local := now.In(loc)
	today := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	out := make([]DaySummary, 0, n)
	for i := n - 1; i >= 0; i-- {
		key := today.AddDate(0, 0, -i).Format(dateKey)
		summary := daily[key]
		summary.Date = key
		out = append(out, summary)
	}
	return out
}
