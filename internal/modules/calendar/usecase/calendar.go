package usecase

import (
	"context"
	"fmt"
	"time"

	"gentlemind/internal/modules/calendar/domain"
	calendardto "gentlemind/internal/modules/calendar/dto"
	calendarin "gentlemind/internal/modules/calendar/port/in"
	calendarout "gentlemind/internal/modules/calendar/port/out"
	"gentlemind/internal/platform/clock"
	apperrors "gentlemind/internal/platform/errors"
)

const maxTrendDays = 366

type Interactor struct {
	source calendarout.RecordSource
	clock  clock.Clock
	loc    *time.Location
}

func NewInteractor(source calendarout.RecordSource, clk clock.Clock, loc *time.Location) calendarin.Usecase {
	if loc == nil {
		loc = time.Local
	}
	return &Interactor{source: source, clock: clk, loc: loc}
}

// Month aggregates one month. A zero year or month means the current one.
func (i *Interactor) Month(_ context.Context, input calendardto.MonthInput) (calendardto.MonthOutput, error) {
	now := i.clock.Now().In(i.loc)
	year, month := input.Year, input.Month
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if month < 1 || month > 12 {
		return calendardto.MonthOutput{}, fmt.Errorf("%w: month must be 1-12, got %d", apperrors.ErrInvalidInput, month)
	}
	if year < 1 {
		return calendardto.MonthOutput{}, fmt.Errorf("%w: year must be positive, got %d", apperrors.ErrInvalidInput, year)
	}

	m := domain.Aggregate(i.source.Records(), year, time.Month(month), i.loc, now)
	out := calendardto.MonthOutput{
		Year:          m.Year,
		Month:         int(m.Month),
		Leading:       m.Leading,
		Days:          make([]calendardto.DayOutput, 0, len(m.Days)),
		TotalMinutes:  m.TotalMinutes,
		TotalSessions: m.TotalSessions,
	}
	for _, d := range m.Days {
		day := toDay(d.DaySummary)
		day.Day = d.Day
		day.Today = d.Today
		out.Days = append(out.Days, day)
	}
	return out, nil
}

func (i *Interactor) Trend(_ context.Context, days int) (calendardto.TrendOutput, error) {
	if days < 1 || days > maxTrendDays {
		return calendardto.TrendOutput{}, fmt.Errorf("%w: days must be 1-%d, got %d", apperrors.ErrInvalidInput, maxTrendDays, days)
	}
	summaries := domain.LastDays(i.source.Records(), i.clock.Now(), days, i.loc)
	out := calendardto.TrendOutput{Days: make([]calendardto.DayOutput, 0, len(summaries))}
	for _, s := range summaries {
		out.Days = append(out.Days, toDay(s))
	}
	return out, nil
}

func toDay(s domain.DaySummary) calendardto.DayOutput {
	return calendardto.DayOutput{
		Date:         s.Date,
		TotalMinutes: s.TotalMinutes,
		Sessions:     s.Sessions,
		LastMood:     string(s.LastMood),
	}
}
