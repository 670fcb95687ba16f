package systems

import (
	"reflect"
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

func TestRenderSystemDraw(t *testing.T) {
	gs := game.NewGameState(components.Bounds{Width: 400, Height: 300})
	gs.Player = newTestPlayer(100, 260, 40, 40)
	alien := newTestAlien(10, 20, 30, 30)
	alien.Tier = 1
	alien.ToggleFrame()
	gs.Swarm.Add(alien)
	gs.AddExplosion(50, 60)

	bullets := NewBulletSystem(gs, config.BulletConfig{Width: 4, Height: 10, Speed: 10})
	bullets.Shoot(alien)
	bullets.Shoot(gs.Player)

	r := &recordingRenderer{}
	render := NewRenderSystem(gs, r)
	render.Draw()

	want := []string{
		"SPRITE_ALIEN_DESTROYED@50,60",
		"SPRITE_ALIEN_1_B@10,20",
		"SPRITE_ALIEN_BULLET@10,20",
		"SPRITE_PLAYER@100,260",
		"SPRITE_PLAYER_BULLET@100,260",
	}
	if !reflect.DeepEqual(r.presented, want) {
		t.Errorf("frame:\n got  %v\n want %v", r.presented, want)
	}
	if r.clears != 1 || r.presents != 1 || render.Frames() != 1 {
		t.Errorf("clears=%d presents=%d frames=%d, want 1 each", r.clears, r.presents, render.Frames())
	}
	if !gs.Explosions[0].Drawn {
		t.Error("explosion should be marked drawn after a frame")
	}
}

func TestRenderSystemEmptySwarm(t *testing.T) {
	gs := game.NewGameState(components.Bounds{Width: 400, Height: 300})
	gs.Player = newTestPlayer(0, 260, 40, 40)

	r := &recordingRenderer{}
	NewRenderSystem(gs, r).Draw()

	if len(r.presented) != 1 || r.presented[0] != "SPRITE_PLAYER@0,260" {
		t.Errorf("frame: got %v", r.presented)
	}
}
