package game

import (
	"github.com/decker502/invaders/pkg/components"
)

// Action is a discrete input event consumed by the loop.
type Action int

const (
	ActionNone Action = iota
	ActionMoveLeft
	ActionMoveRight
	ActionFire
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionMoveLeft:
		return "move-left"
	case ActionMoveRight:
		return "move-right"
	case ActionFire:
		return "fire"
	}
	return "unknown"
}

// InputSource delivers pending input events.
//
// PollInput returns the next pending action in arrival order, or ActionNone
// once the batch is drained. It must never block.
type InputSource interface {
	PollInput() Action
}

// Renderer is the drawing collaborator of the loop.
//
// The core only supplies positions and sprite IDs; a frontend decides how to
// put them on screen. DrawEntity with a sprite the frontend has no handle
// for must be a no-op.
type Renderer interface {
	ClearFrame()
	DrawEntity(sprite components.SpriteID, x, y int)
	PresentFrame()
}

// ActionQueue is an InputSource backed by a FIFO. Frontends push the
// actions they translate from raw events and the loop drains them.
type ActionQueue struct {
	pending []Action
}

// Push appends an action. ActionNone is ignored.
func (q *ActionQueue) Push(a Action) {
	if a == ActionNone {
		return
	}
	q.pending = append(q.pending, a)
}

// PollInput implements InputSource.
func (q *ActionQueue) PollInput() Action {
	if len(q.pending) == 0 {
		return ActionNone
	}
	a := q.pending[0]
	q.pending = q.pending[1:]
	if len(q.pending) == 0 {
		q.pending = q.pending[:0:0]
	}
	return a
}

// Len returns the number of pending actions.
func (q *ActionQueue) Len() int {
	return len(q.pending)
}
