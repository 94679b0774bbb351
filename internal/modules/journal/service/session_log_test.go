package service_test

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/modules/journal/domain"
	"gentlemind/internal/modules/journal/service"
	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/id"
	"gentlemind/internal/testutil"
)

func record(id string, at time.Time, seconds int, m mooddomain.Mood) domain.Record {
	return domain.NewRecord(id, at, seconds, &m)
}

func TestSessionLog_AppendThenReloadKeepsOrder(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryKV()
	log := service.NewSessionLog(store, &testutil.MockLogger{})
	require.Empty(t, log.Load(ctx))

	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	moods := []mooddomain.Mood{mooddomain.Happy, mooddomain.Angry, mooddomain.Normal}
	for i, m := range moods {
		got, err := log.Append(ctx, record(string(rune('a'+i)), base.Add(time.Duration(i)*time.Hour), 300, m))
		require.NoError(t, err)
		assert.Len(t, got, i+1)
	}

	reloaded := service.NewSessionLog(store, &testutil.MockLogger{}).Load(ctx)
	require.Len(t, reloaded, 3)
	for i, m := range moods {
		assert.Equal(t, string(rune('a'+i)), reloaded[i].ID)
		assert.Equal(t, m, reloaded[i].MoodBefore)
		assert.Equal(t, 5.0, reloaded[i].DurationMinutes)
		assert.True(t, base.Add(time.Duration(i)*time.Hour).Equal(reloaded[i].Date))
	}
}

func TestSessionLog_LoadFailSoft(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name  string
		setup func(*testutil.MemoryKV)
		warns int
	}{
		{name: "missing", setup: func(*testutil.MemoryKV) {}, warns: 0},
		{name: "corrupt", setup: func(s *testutil.MemoryKV) { s.Data[service.HistoryKey] = "{not json" }, warns: 1},
		{name: "wrong shape", setup: func(s *testutil.MemoryKV) { s.Data[service.HistoryKey] = `{"id":"1"}` }, warns: 1},
		{name: "unreadable", setup: func(s *testutil.MemoryKV) { s.GetErr = testutil.ErrBoom }, warns: 1},
		{name: "null", setup: func(s *testutil.MemoryKV) { s.Data[service.HistoryKey] = "null" }, warns: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := testutil.NewMemoryKV()
			tt.setup(store)
			logger := &testutil.MockLogger{}
			got := service.NewSessionLog(store, logger).Load(ctx)
			assert.NotNil(t, got)
			assert.Empty(t, got)
			assert.Equal(t, tt.warns, logger.Count("warn"))
		})
	}
}

func TestSessionLog_PersistFailureKeepsRecordInMemory(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryKV()
	store.SetErr = testutil.ErrBoom
	log := service.NewSessionLog(store, &testutil.MockLogger{})

	got, err := log.Append(ctx, record("1", time.Now(), 60, mooddomain.Happy))
	require.ErrorIs(t, err, testutil.ErrBoom)
	require.Len(t, got, 1)
	assert.Len(t, log.Records(), 1)
	assert.Empty(t, store.Data)
}

func TestSessionLog_ReadsOriginalFormat(t *testing.T) {
	store := testutil.NewMemoryKV()
	store.Data[service.HistoryKey] = `[{"id":"1710000000000","date":"2024-03-09T16:00:00.000Z","durationMinutes":0.5,"moodBefore":"Exhausted"}]`

	got := service.NewSessionLog(store, &testutil.MockLogger{}).Load(context.Background())
	require.Len(t, got, 1)
	assert.Equal(t, "1710000000000", got[0].ID)
	assert.Equal(t, mooddomain.Exhausted, got[0].MoodBefore)
	assert.Equal(t, 0.5, got[0].DurationMinutes)
	assert.Nil(t, got[0].MoodAfter)
}

func TestSessionLog_RecordsIsACopy(t *testing.T) {
	log := service.NewSessionLog(testutil.NewMemoryKV(), &testutil.MockLogger{})
	_, err := log.Append(context.Background(), record("1", time.Now(), 60, mooddomain.Happy))
	require.NoError(t, err)

	got := log.Records()
	got[0].ID = "mutated"
	assert.Equal(t, "1", log.Records()[0].ID)
}

func TestSessionLog_NextIDFollowsLatestAfterClockMovedBack(t *testing.T) {
	store := testutil.NewMemoryKV()
	store.Data[service.HistoryKey] = `[` +
		`{"id":"1710000000000","date":"2024-03-09T16:00:00.000Z","durationMinutes":1,"moodBefore":"Happy"},` +
		`{"id":"legacy","date":"2024-03-09T17:00:00.000Z","durationMinutes":1,"moodBefore":"Happy"},` +
		`{"id":"1710000005000","date":"2024-03-09T16:00:05.000Z","durationMinutes":1,"moodBefore":"Happy"}]`
	log := service.NewSessionLog(store, &testutil.MockLogger{})
	log.Load(context.Background())
	require.Equal(t, int64(1710000005000), log.LatestID())

	earlier := testutil.NewFakeClock(time.UnixMilli(1710000000000).Add(-time.Hour))
	gen := id.NewTimestamp(earlier, id.After(log.LatestID()))
	next, err := strconv.ParseInt(gen.New(), 10, 64)
	require.NoError(t, err)
	assert.Greater(t, next, int64(1710000005000))
}

func TestSessionLog_LatestIDOfEmptyLog(t *testing.T) {
	log := service.NewSessionLog(testutil.NewMemoryKV(), &testutil.MockLogger{})
	assert.Zero(t, log.LatestID())
}

func TestSessionLog_MergeAddsOnlyNewIDs(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryKV()
	log := service.NewSessionLog(store, &testutil.MockLogger{})
	base := time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)
	_, err := log.Append(ctx, record("a", base, 60, mooddomain.Happy))
	require.NoError(t, err)

	added, err := log.Merge(ctx, []domain.Record{
		record("a", base, 60, mooddomain.Happy),
		record("b", base.Add(time.Hour), 120, mooddomain.Angry),
		record("b", base.Add(time.Hour), 120, mooddomain.Angry),
	})
	require.NoError(t, err)
	assert.Equal(t, 1, added)

	reloaded := service.NewSessionLog(store, &testutil.MockLogger{}).Load(ctx)
	require.Len(t, reloaded, 2)
	assert.Equal(t, "b", reloaded[1].ID)

	store.SetErr = testutil.ErrBoom
	added, err = log.Merge(ctx, []domain.Record{record("a", base, 60, mooddomain.Happy)})
	require.NoError(t, err)
	assert.Zero(t, added)
}
