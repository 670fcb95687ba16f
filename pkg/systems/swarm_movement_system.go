package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/game"
)

// directionCycle is the swarm's movement cycle. Odd slots are the descents
// that follow a horizontal run.
var directionCycle = [4]components.Direction{
	components.DirectionRight,
	components.DirectionDown,
	components.DirectionLeft,
	components.DirectionDown,
}

// maxMoveAttempts bounds the directions tried by one Advance call: the
// current one plus a single fallback.
const maxMoveAttempts = 2

// TryMove applies one step of direction to alien's position without
// mutating it.
//
// Returns:
//   - x, y: the new position
//   - ok: false when the move would cross the playfield boundary
func TryMove(direction components.Direction, alien *components.Alien, step int, bounds components.Bounds) (int, int, bool) {
	switch direction {
	case components.DirectionRight:
		if alien.X+alien.Width+step > bounds.Width {
			return alien.X, alien.Y, false
		}
	case components.DirectionLeft:
		if alien.X-step < 0 {
			return alien.X, alien.Y, false
		}
	case components.DirectionDown:
		if alien.Y+alien.Height+step > bounds.Height {
			return alien.X, alien.Y, false
		}
	}
	dx, dy := direction.Delta(step)
	return alien.X + dx, alien.Y + dy, true
}

// SwarmMovementDirector moves the whole swarm in lockstep.
//
// It holds only the direction index; the swarm itself is passed to every
// Advance call.
type SwarmMovementDirector struct {
	directionIndex int
	bounds         components.Bounds
}

// NewSwarmMovementDirector creates a director starting with a move to the
// right.
func NewSwarmMovementDirector(bounds components.Bounds) *SwarmMovementDirector {
	return &SwarmMovementDirector{bounds: bounds}
}

// DirectionIndex returns the current slot in the movement cycle.
func (d *SwarmMovementDirector) DirectionIndex() int {
	return d.directionIndex
}

// Direction returns the direction the next Advance will try first.
func (d *SwarmMovementDirector) Direction() components.Direction {
	return directionCycle[d.directionIndex]
}

// Advance performs one collective move of step pixels.
//
// Every alien in swarm order is moved in the current direction and its
// animation phase toggled. If all of them succeed the move is committed:
// after a descent the director moves on to the next horizontal direction,
// after a horizontal step it stays put so the run continues. If any alien is
// blocked, the aliens already moved are rolled back, the director moves to
// the next slot and tries once more. Hitting a side wall therefore turns
// into a descent within the same call.
//
// Returns false when both attempts were blocked; the swarm is then exactly
// as it was before the call.
func (d *SwarmMovementDirector) Advance(swarm *game.Swarm, step int) bool {
	aliens := swarm.Aliens()

	for attempt := 0; attempt < maxMoveAttempts; attempt++ {
		direction := directionCycle[d.directionIndex]

		moved, ok := d.moveAll(aliens, direction, step)
		if ok {
			if d.directionIndex%2 == 1 {
				d.directionIndex = (d.directionIndex + 1) % len(directionCycle)
			}
			return true
		}

		rollback(aliens[:moved], direction, step)
		d.directionIndex = (d.directionIndex + 1) % len(directionCycle)
		log.Printf("[SwarmMovement] Move %s blocked after %d aliens, trying %s",
			direction, moved, directionCycle[d.directionIndex])
	}
	return false
}

// moveAll moves aliens one by one until one is blocked. It returns how many
// aliens were moved.
func (d *SwarmMovementDirector) moveAll(aliens []*components.Alien, direction components.Direction, step int) (int, bool) {
	for i, alien := range aliens {
		x, y, ok := TryMove(direction, alien, step, d.bounds)
		if !ok {
			return i, false
		}
		alien.MoveTo(x, y)
		alien.ToggleFrame()
	}
	return len(aliens), true
}

// rollback undoes a partial move: inverse shift and re-toggle. Inverse
// moves are never bounds-checked because they return to a position that was
// valid a moment ago.
func rollback(moved []*components.Alien, direction components.Direction, step int) {
	dx, dy := direction.Opposite().Delta(step)
	for _, alien := range moved {
		alien.MoveTo(alien.X+dx, alien.Y+dy)
		alien.ToggleFrame()
	}
}
