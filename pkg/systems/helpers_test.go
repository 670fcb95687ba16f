package systems

import (
	"fmt"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/game"
)

func newTestAlien(x, y, w, h int) *components.Alien {
	a := &components.Alien{Width: w, Height: h}
	a.MoveTo(x, y)
	return a
}

func newTestPlayer(x, y, w, h int) *components.Player {
	p := &components.Player{Y: y, Width: w, Height: h}
	p.MoveTo(x)
	return p
}

func newTestSwarm(aliens ...*components.Alien) *game.Swarm {
	s := game.NewSwarm()
	for _, a := range aliens {
		s.Add(a)
	}
	return s
}

// recordingRenderer keeps the calls of the last presented frame.
type recordingRenderer struct {
	pending   []string
	presented []string
	clears    int
	presents  int
}

func (r *recordingRenderer) ClearFrame() {
	r.pending = r.pending[:0]
	r.clears++
}

func (r *recordingRenderer) DrawEntity(sprite components.SpriteID, x, y int) {
	r.pending = append(r.pending, fmt.Sprintf("%s@%d,%d", sprite, x, y))
}

func (r *recordingRenderer) PresentFrame() {
	r.presented = append([]string(nil), r.pending...)
	r.presents++
}
