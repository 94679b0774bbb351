package in

import (
	"context"

	"gentlemind/internal/modules/mood/dto"
)

type Usecase interface {
	List(ctx context.Context, lang string) ([]dto.MoodOutput, error)
}
