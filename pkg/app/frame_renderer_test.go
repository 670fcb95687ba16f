package app

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/components"
)

func TestFrameRendererDisplayList(t *testing.T) {
	player := ebiten.NewImage(4, 4)
	r := NewFrameRenderer(map[components.SpriteID]*ebiten.Image{
		components.SpritePlayer: player,
	})

	r.ClearFrame()
	r.DrawEntity(components.SpritePlayer, 10, 20)
	r.DrawEntity(components.SpriteAlienBullet, 1, 2)
	if r.Len() != 0 {
		t.Errorf("nothing should be visible before PresentFrame, got %d", r.Len())
	}

	r.PresentFrame()
	if r.Len() != 1 {
		t.Fatalf("published frame: got %d draw calls, want 1", r.Len())
	}
	if cmd := r.frame[0]; cmd.img != player || cmd.x != 10 || cmd.y != 20 {
		t.Errorf("draw call: got %+v", cmd)
	}

	// a frame in progress does not disturb the published one
	r.ClearFrame()
	r.DrawEntity(components.SpritePlayer, 30, 20)
	r.DrawEntity(components.SpritePlayer, 40, 20)
	if r.Len() != 1 || r.frame[0].x != 10 {
		t.Error("published frame changed before PresentFrame")
	}
	r.PresentFrame()
	if r.Len() != 2 || r.frame[1].x != 40 {
		t.Errorf("second frame: got %+v", r.frame)
	}
}

func TestFrameRendererMissingSprites(t *testing.T) {
	r := NewFrameRenderer(nil)
	r.ClearFrame()
	for _, id := range components.AllSprites() {
		r.DrawEntity(id, 0, 0)
	}
	r.PresentFrame()

	if r.Len() != 0 {
		t.Errorf("sprites without images must be skipped, got %d draw calls", r.Len())
	}
}
