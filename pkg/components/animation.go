package components

// AnimationPhase selects one of the two alternating sprites of an entity.
type AnimationPhase int

const (
	// PhaseA is the phase every alien starts in.
	PhaseA AnimationPhase = iota
	// PhaseB is the alternate frame shown after every other swarm step.
	PhaseB
)

// Toggled returns the other phase.
func (p AnimationPhase) Toggled() AnimationPhase {
	if p == PhaseA {
		return PhaseB
	}
	return PhaseA
}

// String implements fmt.Stringer.
func (p AnimationPhase) String() string {
	if p == PhaseA {
		return "A"
	}
	return "B"
}
