package domain

type BreathPhase string

const (
	BreathReady  BreathPhase = "ready"
	BreathInhale BreathPhase = "inhale"
	BreathExhale BreathPhase = "exhale"
)

const (
	inhaleSeconds = 4
	cycleSeconds  = 10
)

// BreathPhaseAt maps running time to the breathing guide: 4s in, 6s out.
func BreathPhaseAt(elapsedSeconds int, running bool) BreathPhase {
	if !running {
		return BreathReady
	}
	if elapsedSeconds < 0 {
		elapsedSeconds = 0
	}
	if elapsedSeconds%cycleSeconds < inhaleSeconds {
		return BreathInhale
	}
	return BreathExhale
}
