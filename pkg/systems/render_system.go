package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/game"
)

// RenderSystem turns the game state into draw calls on a Renderer.
type RenderSystem struct {
	gameState *game.GameState
	renderer  game.Renderer
	frames    int
}

// NewRenderSystem creates a render system drawing gs through renderer.
func NewRenderSystem(gs *game.GameState, renderer game.Renderer) *RenderSystem {
	return &RenderSystem{
		gameState: gs,
		renderer:  renderer,
	}
}

// Draw emits one complete frame. Draw order, back to front: explosions,
// aliens, alien bullets, player, player bullet.
func (s *RenderSystem) Draw() {
	gs := s.gameState
	r := s.renderer

	r.ClearFrame()

	for i := range gs.Explosions {
		e := &gs.Explosions[i]
		r.DrawEntity(components.SpriteAlienDestroyed, e.X, e.Y)
		e.Drawn = true
	}

	aliens := gs.Swarm.Aliens()
	for _, a := range aliens {
		r.DrawEntity(components.AlienSprite(a.Tier, a.Phase), a.X, a.Y)
	}
	for _, a := range aliens {
		if b := a.Gun.Bullet(); b != nil {
			r.DrawEntity(a.BulletSprite(), b.X, b.Y)
		}
	}

	p := gs.Player
	r.DrawEntity(components.SpritePlayer, p.X, p.Y)
	if b := p.Gun.Bullet(); b != nil {
		r.DrawEntity(p.BulletSprite(), b.X, b.Y)
	}

	r.PresentFrame()
	s.frames++
}

// Frames returns how many frames have been presented.
func (s *RenderSystem) Frames() int {
	return s.frames
}
