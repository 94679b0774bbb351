package in

import (
	"context"

	preferencedto "gentlemind/internal/modules/preference/dto"
	preferencein "gentlemind/internal/modules/preference/port/in"
)

type CLIHandler struct {
	usecase preferencein.Usecase
}

func NewCLIHandler(usecase preferencein.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Language(ctx context.Context) preferencedto.LanguageOutput {
	return h.usecase.Language(ctx)
}

func (h CLIHandler) SetLanguage(ctx context.Context, code string) (preferencedto.LanguageOutput, error) {
	return h.usecase.SetLanguage(ctx, code)
}
