package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	journaldomain "gentlemind/internal/modules/journal/domain"
	mooddomain "gentlemind/internal/modules/mood/domain"
)

func rec(id string, at time.Time, minutes float64, m mooddomain.Mood) journaldomain.Record {
	return journaldomain.Record{ID: id, Date: at, DurationMinutes: minutes, MoodBefore: m}
}

func TestAggregate_EmptyLog(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)
	for _, month := range []time.Month{time.January, time.February, time.December} {
		m := Aggregate(nil, 2024, month, time.UTC, now)
		assert.Zero(t, m.TotalMinutes)
		assert.Zero(t, m.TotalSessions)
		for _, d := range m.Days {
			assert.False(t, d.Marked())
		}
	}
}

func TestAggregate_GridLayout(t *testing.T) {
	now := time.Date(2024, 2, 10, 12, 0, 0, 0, time.UTC)

	// 1 Feb 2024 is a Thursday; 2024 is a leap year.
	feb := Aggregate(nil, 2024, time.February, time.UTC, now)
	assert.Equal(t, 4, feb.Leading)
	assert.Len(t, feb.Days, 29)
	cells := feb.Cells()
	require.Len(t, cells, 33)
	for i := 0; i < 4; i++ {
		assert.Nil(t, cells[i])
	}
	assert.Equal(t, 1, cells[4].Day)
	assert.True(t, cells[4+9].Today)

	// 1 Sep 2024 is a Sunday.
	sep := Aggregate(nil, 2024, time.September, time.UTC, now)
	assert.Equal(t, 0, sep.Leading)
	assert.Len(t, sep.Days, 30)
	for _, d := range sep.Days {
		assert.False(t, d.Today)
	}
}

func TestAggregate_LastMoodOfDayWins(t *testing.T) {
	loc := time.UTC
	records := []journaldomain.Record{
		rec("1", time.Date(2024, 3, 5, 20, 0, 0, 0, loc), 5, mooddomain.Angry),
		rec("2", time.Date(2024, 3, 5, 7, 0, 0, 0, loc), 2.5, mooddomain.Happy),
		rec("3", time.Date(2024, 3, 6, 7, 0, 0, 0, loc), 1, mooddomain.Normal),
		rec("4", time.Date(2024, 4, 1, 7, 0, 0, 0, loc), 10, mooddomain.Exhausted),
	}
	m := Aggregate(records, 2024, time.March, loc, time.Time{})

	fifth := m.Days[4]
	assert.Equal(t, "2024-03-05", fifth.Date)
	assert.Equal(t, 7.5, fifth.TotalMinutes)
	assert.Equal(t, 2, fifth.Sessions)
	assert.Equal(t, mooddomain.Happy, fifth.LastMood)
	assert.True(t, m.Days[5].Marked())
	assert.False(t, m.Days[6].Marked())

	assert.Equal(t, 18.5, m.TotalMinutes)
	assert.Equal(t, 4, m.TotalSessions)
}

func TestAggregate_UsesLocalDate(t *testing.T) {
	bangkok := time.FixedZone("ICT", 7*60*60)
	late := rec("1", time.Date(2024, 3, 5, 20, 0, 0, 0, time.UTC), 5, mooddomain.Happy)

	m := Aggregate([]journaldomain.Record{late}, 2024, time.March, bangkok, time.Time{})
	assert.False(t, m.Days[4].Marked())
	assert.True(t, m.Days[5].Marked())
}

func TestLastDays(t *testing.T) {
	now := time.Date(2024, 3, 7, 22, 0, 0, 0, time.UTC)
	records := []journaldomain.Record{
		rec("1", time.Date(2024, 2, 28, 8, 0, 0, 0, time.UTC), 3, mooddomain.Happy),
		rec("2", time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC), 4, mooddomain.Happy),
		rec("3", time.Date(2024, 3, 7, 8, 0, 0, 0, time.UTC), 5, mooddomain.Angry),
	}
	got := LastDays(records, now, 7, time.UTC)
	require.Len(t, got, 7)
	assert.Equal(t, "2024-03-01", got[0].Date)
	assert.Equal(t, 4.0, got[0].TotalMinutes)
	assert.Equal(t, "2024-03-07", got[6].Date)
	assert.Equal(t, mooddomain.Angry, got[6].LastMood)
	assert.Zero(t, got[3].Sessions)

	assert.Empty(t, LastDays(records, now, 0, time.UTC))
}
