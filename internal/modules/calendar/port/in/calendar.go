package in

import (
	"context"

	"gentlemind/internal/modules/calendar/dto"
)

type Usecase interface {
	Month(ctx context.Context, input dto.MonthInput) (dto.MonthOutput, error)
	Trend(ctx context.Context, days int) (dto.TrendOutput, error)
}
