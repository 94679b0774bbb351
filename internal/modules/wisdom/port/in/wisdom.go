package in

import (
	"context"

	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/i18n"
)

// Service produces supportive text. Every call returns usable text; failures
// are absorbed into localized fallbacks.
type Service interface {
	Affirmation(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string
	GuidedScript(ctx context.Context, mood mooddomain.Mood, minutes int, lang i18n.Language) string
	ClosingMessage(ctx context.Context, mood mooddomain.Mood, lang i18n.Language) string
}
