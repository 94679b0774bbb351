package out

import (
	"context"

	journaldomain "gentlemind/internal/modules/journal/domain"
	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/i18n"
)

type SessionLog interface {
	Append(ctx context.Context, record journaldomain.Record) ([]journaldomain.Record, error)
	Records() []journaldomain.Record
}

// Wisdom produces text for the flow. Calls may take a while but always
// return something displayable.
type Wisdom interface {
	Affirmation(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string
	GuidedScript(ctx context.Context, mood mooddomain.Mood, minutes int, lang i18n.Language) string
	ClosingMessage(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string
}

// Narrator speaks one utterance at a time. Calls are fire-and-forget.
type Narrator interface {
	Speak(text, languageTag string)
	Pause()
	Resume()
	CancelAll()
}

type Preferences interface {
	Language() i18n.Language
	SetLanguage(ctx context.Context, lang i18n.Language) error
}
