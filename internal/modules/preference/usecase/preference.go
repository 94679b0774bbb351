package usecase

import (
	"context"

	preferencedto "gentlemind/internal/modules/preference/dto"
	preferencein "gentlemind/internal/modules/preference/port/in"
	"gentlemind/internal/modules/preference/service"
	"gentlemind/internal/platform/i18n"
)

type Interactor struct {
	svc *service.LanguageService
}

func NewInteractor(svc *service.LanguageService) preferencein.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Language(context.Context) preferencedto.LanguageOutput {
	return toOutput(i.svc.Language())
}

func (i *Interactor) SetLanguage(ctx context.Context, code string) (preferencedto.LanguageOutput, error) {
	lang, err := i18n.ParseLanguage(code)
	if err != nil {
		return preferencedto.LanguageOutput{}, err
	}
	if err := i.svc.SetLanguage(ctx, lang); err != nil {
		return preferencedto.LanguageOutput{}, err
	}
	return toOutput(lang), nil
}

func toOutput(lang i18n.Language) preferencedto.LanguageOutput {
	return preferencedto.LanguageOutput{Code: string(lang), Tag: lang.Tag()}
}
