package in

import (
	"context"
	"io"

	journaldto "gentlemind/internal/modules/journal/dto"
	journalin "gentlemind/internal/modules/journal/port/in"
)

type CLIHandler struct {
	usecase journalin.Usecase
}

func NewCLIHandler(usecase journalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context) ([]journaldto.RecordOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Export(ctx context.Context, format string, out io.Writer) (journaldto.ExportOutput, error) {
	return h.usecase.Export(ctx, journaldto.ExportInput{Format: format, Out: out})
}

func (h CLIHandler) Import(ctx context.Context, format string, in io.Reader) (journaldto.ImportOutput, error) {
	return h.usecase.Import(ctx, journaldto.ImportInput{Format: format, In: in})
}
