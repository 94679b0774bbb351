package in

import (
	"context"

	calendardto "gentlemind/internal/modules/calendar/dto"
	calendarin "gentlemind/internal/modules/calendar/port/in"
)

type CLIHandler struct {
	usecase calendarin.Usecase
}

func NewCLIHandler(usecase calendarin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Month(ctx context.Context, year, month int) (calendardto.MonthOutput, error) {
	return h.usecase.Month(ctx, calendardto.MonthInput{Year: year, Month: month})
}

func (h CLIHandler) Trend(ctx context.Context, days int) (calendardto.TrendOutput, error) {
	return h.usecase.Trend(ctx, days)
}
