package game

import (
	"github.com/decker502/invaders/pkg/components"
)

// Outcome is the terminal state of a game session.
type Outcome int

const (
	// OutcomeRunning means no terminal condition has been raised.
	OutcomeRunning Outcome = iota
	// OutcomeGameOver is raised when an alien bullet hits the player.
	OutcomeGameOver
	// OutcomeStalemate is raised when the swarm is emptied. It is neutral:
	// there is no victory condition.
	OutcomeStalemate
)

// String implements fmt.Stringer.
func (o Outcome) String() string {
	switch o {
	case OutcomeRunning:
		return "running"
	case OutcomeGameOver:
		return "game over"
	case OutcomeStalemate:
		return "stalemate"
	}
	return "unknown"
}

// GameState holds everything the loop mutates: the player, the swarm and
// transient explosion markers.
//
// It is owned by a single scene and mutated only from the loop goroutine.
type GameState struct {
	Bounds     components.Bounds
	Player     *components.Player
	Swarm      *Swarm
	Explosions []components.Explosion

	outcome Outcome
}

// NewGameState creates a state with an empty swarm for a playfield of the
// given size. The player is created by the entity factories.
func NewGameState(bounds components.Bounds) *GameState {
	return &GameState{
		Bounds:     bounds,
		Swarm:      NewSwarm(),
		Explosions: make([]components.Explosion, 0),
	}
}

// Outcome returns the current outcome.
func (gs *GameState) Outcome() Outcome {
	return gs.outcome
}

// IsOver reports whether a terminal outcome has been raised.
func (gs *GameState) IsOver() bool {
	return gs.outcome != OutcomeRunning
}

// SetOutcome raises a terminal outcome. The first outcome wins.
func (gs *GameState) SetOutcome(o Outcome) {
	if gs.outcome == OutcomeRunning {
		gs.outcome = o
	}
}

// AddExplosion records an explosion marker at (x, y).
func (gs *GameState) AddExplosion(x, y int) {
	gs.Explosions = append(gs.Explosions, components.Explosion{X: x, Y: y})
}

// ClearExplosions drops the explosion markers that have been drawn.
// Markers raised since the last frame are kept.
func (gs *GameState) ClearExplosions() {
	kept := gs.Explosions[:0]
	for _, e := range gs.Explosions {
		if !e.Drawn {
			kept = append(kept, e)
		}
	}
	gs.Explosions = kept
}
