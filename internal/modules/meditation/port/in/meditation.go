package in

import (
	"context"

	"gentlemind/internal/modules/meditation/dto"
)

// Usecase drives the check-in to summary flow. Transitions that are not legal
// from the current view fail with ErrInvalidTransition and change nothing.
type Usecase interface {
	SelectMood(mood string) error
	ShowStats() error
	StartSetup() error
	Back() error
	AdjustDuration(input dto.DurationInput) error
	ApplyPreset(seconds int) error
	StartSession() error
	TogglePause() error
	Exit() error
	ViewProgress() error
	Reset()
	ToggleLanguage(ctx context.Context) error
	Snapshot() dto.Snapshot
	Changes() <-chan struct{}
}
