package id_test

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gentlemind/internal/platform/id"
)

type frozenClock struct{ t time.Time }

func (f frozenClock) Now() time.Time { return f.t }

func TestTimestampIsCreationTimeInMillis(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
	gen := id.NewTimestamp(frozenClock{t: at})
	assert.Equal(t, strconv.FormatInt(at.UnixMilli(), 10), gen.New())
}

func TestTimestampStaysUniqueWithinOneMillisecond(t *testing.T) {
	t.Parallel()
	gen := id.NewTimestamp(frozenClock{t: time.Unix(1700000000, 0)})
	seen := map[string]bool{}
	prev := int64(0)
	for i := 0; i < 50; i++ {
		v := gen.New()
		require.False(t, seen[v], "duplicate id %s", v)
		seen[v] = true
		n, err := strconv.ParseInt(v, 10, 64)
		require.NoError(t, err)
		assert.Greater(t, n, prev)
		prev = n
	}
}

func TestTimestampAfterSurvivesClockGoingBack(t *testing.T) {
	t.Parallel()
	issued := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC).UnixMilli()
	gen := id.NewTimestamp(frozenClock{t: time.Date(2026, 10, 16, 8, 0, 0, 0, time.UTC)}, id.After(issued))
	assert.Equal(t, strconv.FormatInt(issued+1, 10), gen.New())
	assert.Equal(t, strconv.FormatInt(issued+2, 10), gen.New())
}

func TestTimestampAfterOlderIDKeepsClockTime(t *testing.T) {
	t.Parallel()
	at := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)
	gen := id.NewTimestamp(frozenClock{t: at}, id.After(42))
	assert.Equal(t, strconv.FormatInt(at.UnixMilli(), 10), gen.New())
}

func TestUUIDIsOpaqueAndDistinct(t *testing.T) {
	t.Parallel()
	a, b := id.UUID{}.New(), id.UUID{}.New()
	assert.Len(t, a, 36)
	assert.NotEqual(t, a, b)
}
