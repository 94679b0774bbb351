package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	calendardto "gentlemind/internal/modules/calendar/dto"
	"gentlemind/internal/modules/calendar/usecase"
	journaldomain "gentlemind/internal/modules/journal/domain"
	mooddomain "gentlemind/internal/modules/mood/domain"
	apperrors "gentlemind/internal/platform/errors"
	"gentlemind/internal/testutil"
)

type staticSource []journaldomain.Record

func (s staticSource) Records() []journaldomain.Record { return s }

func TestMonth_DefaultsToCurrentMonth(t *testing.T) {
	clk := testutil.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))
	happy := mooddomain.Happy
	src := staticSource{journaldomain.NewRecord("1", time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC), 600, &happy)}
	uc := usecase.NewInteractor(src, clk, time.UTC)

	out, err := uc.Month(context.Background(), calendardto.MonthInput{})
	require.NoError(t, err)
	assert.Equal(t, 2024, out.Year)
	assert.Equal(t, 7, out.Month)
	assert.Equal(t, 1, out.Leading)
	require.Len(t, out.Days, 31)
	assert.True(t, out.Days[14].Today)
	assert.Equal(t, "Happy", out.Days[14].LastMood)
	assert.Equal(t, 10.0, out.TotalMinutes)
	assert.Equal(t, 1, out.TotalSessions)
}

func TestMonth_RejectsBadMonth(t *testing.T) {
	uc := usecase.NewInteractor(staticSource{}, testutil.NewFakeClock(time.Now()), time.UTC)
	_, err := uc.Month(context.Background(), calendardto.MonthInput{Year: 2024, Month: 13})
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestTrend(t *testing.T) {
	clk := testutil.NewFakeClock(time.Date(2024, 7, 15, 10, 0, 0, 0, time.UTC))
	uc := usecase.NewInteractor(staticSource{}, clk, time.UTC)

	out, err := uc.Trend(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, out.Days, 7)
	assert.Equal(t, "2024-07-09", out.Days[0].Date)
	assert.Equal(t, "2024-07-15", out.Days[6].Date)

	_, err = uc.Trend(context.Background(), 0)
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}
