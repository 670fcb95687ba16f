package app

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/components"
)

type drawCmd struct {
	img  *ebiten.Image
	x, y int
}

// FrameRenderer implements game.Renderer on top of ebiten.
//
// The game loop steps inside ebiten's Update, where nothing can be drawn, so
// draw calls are recorded into a display list. PresentFrame publishes the
// list and Draw replays the last published list on every ebiten frame.
type FrameRenderer struct {
	sprites map[components.SpriteID]*ebiten.Image
	pending []drawCmd
	frame   []drawCmd
}

// NewFrameRenderer creates a renderer drawing the given sprite images.
// Sprites without an image are skipped when drawn.
func NewFrameRenderer(sprites map[components.SpriteID]*ebiten.Image) *FrameRenderer {
	return &FrameRenderer{sprites: sprites}
}

// ClearFrame implements game.Renderer.
func (r *FrameRenderer) ClearFrame() {
	r.pending = r.pending[:0]
}

// DrawEntity implements game.Renderer.
func (r *FrameRenderer) DrawEntity(sprite components.SpriteID, x, y int) {
	img := r.sprites[sprite]
	if img == nil {
		return
	}
	r.pending = append(r.pending, drawCmd{img: img, x: x, y: y})
}

// PresentFrame implements game.Renderer.
func (r *FrameRenderer) PresentFrame() {
	r.frame, r.pending = r.pending, r.frame[:0]
}

// Len returns the number of draw calls in the published frame.
func (r *FrameRenderer) Len() int {
	return len(r.frame)
}

// Draw replays the published frame onto screen.
func (r *FrameRenderer) Draw(screen *ebiten.Image) {
	for _, cmd := range r.frame {
		op := &ebiten.DrawImageOptions{}
		op.GeoM.Translate(float64(cmd.x), float64(cmd.y))
		screen.DrawImage(cmd.img, op)
	}
}

// ToEbitenImages converts decoded sprites into ebiten images.
func ToEbitenImages(sprites map[components.SpriteID]image.Image) map[components.SpriteID]*ebiten.Image {
	out := make(map[components.SpriteID]*ebiten.Image, len(sprites))
	for id, img := range sprites {
		out[id] = ebiten.NewImageFromImage(img)
	}
	return out
}
