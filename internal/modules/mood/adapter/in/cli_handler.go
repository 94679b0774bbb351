package in

import (
	"context"

	mooddto "gentlemind/internal/modules/mood/dto"
	moodin "gentlemind/internal/modules/mood/port/in"
)

type CLIHandler struct {
	usecase moodin.Usecase
}

func NewCLIHandler(usecase moodin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) List(ctx context.Context, lang string) ([]mooddto.MoodOutput, error) {
	return h.usecase.List(ctx, lang)
}
