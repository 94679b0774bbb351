package domain

// View is the single screen currently shown.
type View int

const (
	ViewMoodCheckin View = iota
	ViewWisdom
	ViewSetup
	ViewMeditation
	ViewSummary
	ViewStats
)

func (v View) String() string {
	switch v {
	case ViewMoodCheckin:
		return "mood-checkin"
	case ViewWisdom:
		return "wisdom"
	case ViewSetup:
		return "setup"
	case ViewMeditation:
		return "meditation"
	case ViewSummary:
		return "summary"
	case ViewStats:
		return "stats"
	default:
		return "unknown"
	}
}
