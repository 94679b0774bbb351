package usecase

import (
	"context"

	"gentlemind/internal/modules/mood/domain"
	mooddto "gentlemind/internal/modules/mood/dto"
	moodin "gentlemind/internal/modules/mood/port/in"
	"gentlemind/internal/platform/i18n"
)

type Interactor struct{}

func NewInteractor() moodin.Usecase {
	return Interactor{}
}

// List returns the check-in moods in display order, labelled in lang.
func (Interactor) List(_ context.Context, lang string) ([]mooddto.MoodOutput, error) {
	parsed, err := i18n.ParseLanguage(lang)
	if err != nil {
		return nil, err
	}
	out := make([]mooddto.MoodOutput, 0, len(domain.All()))
	for _, m := range domain.All() {
		c := domain.Lookup(m)
		out = append(out, mooddto.MoodOutput{
			ID:          string(c.ID),
			Emoji:       c.Emoji,
			Color:       c.Color,
			Label:       c.Label(parsed),
			Description: c.Description(parsed),
		})
	}
	return out, nil
}
