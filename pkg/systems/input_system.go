package systems

import (
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// InputSystem drains pending input and applies it to the player.
type InputSystem struct {
	gameState *game.GameState
	source    game.InputSource
	bullets   *BulletSystem
	cfg       config.PlayerConfig
}

// NewInputSystem creates an input system.
//
// Parameters:
//   - gs: game state holding the player
//   - source: the frontend's input source
//   - bullets: used to fire the player's bullet
//   - cfg: move amount and screen clamping
func NewInputSystem(gs *game.GameState, source game.InputSource, bullets *BulletSystem, cfg config.PlayerConfig) *InputSystem {
	return &InputSystem{
		gameState: gs,
		source:    source,
		bullets:   bullets,
		cfg:       cfg,
	}
}

// Update consumes every pending action in order. It returns true when the
// player moved, which calls for a redraw.
func (s *InputSystem) Update() bool {
	moved := false
	for action := s.source.PollInput(); action != game.ActionNone; action = s.source.PollInput() {
		switch action {
		case game.ActionMoveLeft:
			s.movePlayer(-s.cfg.MoveAmount)
			moved = true
		case game.ActionMoveRight:
			s.movePlayer(s.cfg.MoveAmount)
			moved = true
		case game.ActionFire:
			s.bullets.Shoot(s.gameState.Player)
		}
	}
	return moved
}

func (s *InputSystem) movePlayer(dx int) {
	p := s.gameState.Player
	x := p.X + dx
	if s.cfg.ClampToScreen {
		maxX := s.gameState.Bounds.Width - p.Width
		if x > maxX {
			x = maxX
		}
		if x < 0 {
			x = 0
		}
	}
	p.MoveTo(x)
}
