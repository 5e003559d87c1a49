package models

// Phase represents the current stage of a round
type Phase string

const (
	PhaseLobby    Phase = "lobby"
	PhaseReveal   Phase = "reveal"
	PhaseHints    Phase = "hints"
	PhaseRoundEnd Phase = "roundEnd"
	PhaseVoting   Phase = "voting"
	PhaseResults  Phase = "results"
)

// String returns the string representation of the phase
func (p Phase) String() string {
	return string(p)
}

// CanTransitionTo checks if a transition from current phase to target phase is valid
func (p Phase) CanTransitionTo(target Phase) bool {
	validTransitions := map[Phase][]Phase{
		PhaseLobby:    {PhaseReveal},
		PhaseReveal:   {PhaseHints},
		PhaseHints:    {PhaseHints, PhaseRoundEnd},
		PhaseRoundEnd: {PhaseVoting, PhaseReveal},
		PhaseVoting:   {PhaseVoting, PhaseResults},
		PhaseResults:  {PhaseLobby},
	}

	allowed, ok := validTransitions[p]
	if !ok {
		return false
	}

	for _, phase := range allowed {
		if phase == target {
			return true
		}
	}
	return false
}
