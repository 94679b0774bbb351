package in

import (
	"context"

	meditationdto "gentlemind/internal/modules/meditation/dto"
	meditationin "gentlemind/internal/modules/meditation/port/in"
)

// TUIHandler exposes the flow to the terminal UI.
type TUIHandler struct {
	usecase meditationin.Usecase
}

func NewTUIHandler(usecase meditationin.Usecase) TUIHandler {
	return TUIHandler{usecase: usecase}
}

func (h TUIHandler) SelectMood(mood string) error { return h.usecase.SelectMood(mood) }
func (h TUIHandler) ShowStats() error             { return h.usecase.ShowStats() }
func (h TUIHandler) StartSetup() error            { return h.usecase.StartSetup() }
func (h TUIHandler) Back() error                  { return h.usecase.Back() }
func (h TUIHandler) StartSession() error          { return h.usecase.StartSession() }
func (h TUIHandler) TogglePause() error           { return h.usecase.TogglePause() }
func (h TUIHandler) Exit() error                  { return h.usecase.Exit() }
func (h TUIHandler) ViewProgress() error          { return h.usecase.ViewProgress() }
func (h TUIHandler) Reset()                       { h.usecase.Reset() }

func (h TUIHandler) AdjustDuration(minutes, seconds string) error {
	return h.usecase.AdjustDuration(meditationdto.DurationInput{Minutes: minutes, Seconds: seconds})
}

func (h TUIHandler) ApplyPreset(seconds int) error {
	return h.usecase.ApplyPreset(seconds)
}

func (h TUIHandler) ToggleLanguage(ctx context.Context) error {
	return h.usecase.ToggleLanguage(ctx)
}

func (h TUIHandler) Snapshot() meditationdto.Snapshot {
	return h.usecase.Snapshot()
}

func (h TUIHandler) Changes() <-chan struct{} {
	return h.usecase.Changes()
}
