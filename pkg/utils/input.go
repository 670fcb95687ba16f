// Package utils holds the ebiten-specific helpers of the desktop and mobile
// frontends.
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/decker502/invaders/pkg/game"
)

// Key repeat timing in ebiten ticks (60 per second).
const (
	KeyRepeatDelay    = 12
	KeyRepeatInterval = 3
)

var (
	leftKeys  = []ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}
	rightKeys = []ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}
	fireKeys  = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW}
)

// KeyRepeat reports whether an input held for duration ticks emits an event
// on this tick: once on the first tick, then every interval ticks after the
// initial delay.
func KeyRepeat(duration, delay, interval int) bool {
	if duration == 1 {
		return true
	}
	if duration <= delay || interval <= 0 {
		return false
	}
	return (duration-delay)%interval == 0
}

// TouchZoneAction maps a touch at screen x to an action. The left third of
// the screen moves left, the right third moves right and the middle fires.
func TouchZoneAction(x, screenWidth int) game.Action {
	third := screenWidth / 3
	switch {
	case x < third:
		return game.ActionMoveLeft
	case x >= screenWidth-third:
		return game.ActionMoveRight
	}
	return game.ActionFire
}

// InputCollector translates ebiten keyboard and touch state into game
// actions. Call Collect once per ebiten tick, before the game loop step
// drains it through PollInput.
type InputCollector struct {
	queue       game.ActionQueue
	screenWidth int
	touchIDs    []ebiten.TouchID
}

// NewInputCollector creates a collector for a logical screen of the given
// width, used to resolve touch zones.
func NewInputCollector(screenWidth int) *InputCollector {
	return &InputCollector{screenWidth: screenWidth}
}

// Collect queues the actions of the current tick.
func (c *InputCollector) Collect() {
	if repeatedAny(leftKeys) {
		c.queue.Push(game.ActionMoveLeft)
	}
	if repeatedAny(rightKeys) {
		c.queue.Push(game.ActionMoveRight)
	}
	for _, k := range fireKeys {
		if inpututil.IsKeyJustPressed(k) {
			c.queue.Push(game.ActionFire)
			break
		}
	}

	c.touchIDs = ebiten.AppendTouchIDs(c.touchIDs[:0])
	for _, id := range c.touchIDs {
		x, _ := ebiten.TouchPosition(id)
		action := TouchZoneAction(x, c.screenWidth)
		d := inpututil.TouchPressDuration(id)
		if action == game.ActionFire {
			if d == 1 {
				c.queue.Push(action)
			}
			continue
		}
		if KeyRepeat(d, KeyRepeatDelay, KeyRepeatInterval) {
			c.queue.Push(action)
		}
	}
}

// PollInput implements game.InputSource.
func (c *InputCollector) PollInput() game.Action {
	return c.queue.PollInput()
}

func repeatedAny(keys []ebiten.Key) bool {
	for _, k := range keys {
		if KeyRepeat(inpututil.KeyPressDuration(k), KeyRepeatDelay, KeyRepeatInterval) {
			return true
		}
	}
	return false
}
