package systems

import (
	"math/rand"

	"github.com/decker502/invaders/pkg/game"
)

// SwarmFireSystem lets one random alien shoot on every slow tick.
type SwarmFireSystem struct {
	gameState *game.GameState
	bullets   *BulletSystem
	rng       *rand.Rand
}

// NewSwarmFireSystem creates the system. The random source is injected so a
// seeded game replays identically.
func NewSwarmFireSystem(gs *game.GameState, bullets *BulletSystem, rng *rand.Rand) *SwarmFireSystem {
	return &SwarmFireSystem{
		gameState: gs,
		bullets:   bullets,
		rng:       rng,
	}
}

// Update picks one alien uniformly at random from the live swarm and makes
// it shoot. It returns false when the swarm is empty or the chosen alien
// already has a bullet in flight.
func (s *SwarmFireSystem) Update() bool {
	aliens := s.gameState.Swarm.Aliens()
	if len(aliens) == 0 {
		return false
	}
	shooter := aliens[s.rng.Intn(len(aliens))] // #nosec G404 -- gameplay only
	return s.bullets.Shoot(shooter)
}
