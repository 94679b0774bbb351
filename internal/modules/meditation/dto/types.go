package dto

import (
	journaldomain "gentlemind/internal/modules/journal/domain"
	"gentlemind/internal/modules/meditation/domain"
	mooddomain "gentlemind/internal/modules/mood/domain"
	"gentlemind/internal/platform/i18n"
)

// Snapshot is a read-only copy of the flow state for rendering.
type Snapshot struct {
	View     domain.View
	Mood     *mooddomain.Mood
	Language i18n.Language

	Affirmation        string
	AffirmationLoading bool

	Config domain.Config

	Remaining int
	Elapsed   int
	Running   bool
	Breath    domain.BreathPhase

	Script         string
	ScriptLoading  bool
	Closing        string
	ClosingLoading bool

	LastRecord *journaldomain.Record
	Records    []journaldomain.Record
}

type DurationInput struct {
	Minutes string
	Seconds string
}
