package in

import (
	"context"

	"gentlemind/internal/modules/journal/dto"
)

type Usecase interface {
	List(ctx context.Context) ([]dto.RecordOutput, error)
	Export(ctx context.Context, input dto.ExportInput) (dto.ExportOutput, error)
	Import(ctx context.Context, input dto.ImportInput) (dto.ImportOutput, error)
}
