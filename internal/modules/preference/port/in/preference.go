package in

import (
	"context"

	"gentlemind/internal/modules/preference/dto"
)

type Usecase interface {
	Language(ctx context.Context) dto.LanguageOutput
	SetLanguage(ctx context.Context, code string) (dto.LanguageOutput, error)
}
