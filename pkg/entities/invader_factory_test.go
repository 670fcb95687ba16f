package entities

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
)

func TestNewGameStatePopulatesGrid(t *testing.T) {
	cfg := config.Default()
	gs := NewGameState(cfg)

	aliens := gs.Swarm.Aliens()
	if len(aliens) != 55 {
		t.Fatalf("swarm size: got %d, want 55", len(aliens))
	}

	// row-major: index = row*columns + col
	s := cfg.Swarm
	for i, a := range aliens {
		row, col := i/s.Columns, i%s.Columns
		wantX := s.OriginX + col*(s.AlienWidth+s.GapX)
		wantY := s.OriginY + row*(s.AlienHeight+s.GapY)
		if a.X != wantX || a.Y != wantY {
			t.Errorf("alien %d (row %d col %d): got (%d,%d), want (%d,%d)", i, row, col, a.X, a.Y, wantX, wantY)
		}
		if a.Tier != cfg.TierForRow(row) {
			t.Errorf("alien %d tier: got %d, want %d", i, a.Tier, cfg.TierForRow(row))
		}
		if a.Phase != components.PhaseA {
			t.Errorf("alien %d phase: got %v, want A", i, a.Phase)
		}
		if a.Box != components.InsetBox(a.X, a.Y, a.Width, a.Height) {
			t.Errorf("alien %d box not derived from position: %+v", i, a.Box)
		}
		if a.Gun.Armed() {
			t.Errorf("alien %d should start unarmed", i)
		}
	}

	// row 0 is topmost
	if aliens[0].Y >= aliens[s.Columns].Y {
		t.Error("row 0 should be above row 1")
	}
}

func TestNewPlayer(t *testing.T) {
	cfg := config.Default()
	p := NewPlayer(cfg)

	if p.X != 640 {
		t.Errorf("X: got %d, want 640", p.X)
	}
	if p.Y != 720-128 {
		t.Errorf("Y: got %d, want %d", p.Y, 720-128)
	}
	if p.Box != components.InsetBox(p.X, p.Y, p.Width, p.Height) {
		t.Errorf("Box: got %+v", p.Box)
	}
}

func TestNewBullet(t *testing.T) {
	cfg := config.BulletConfig{Width: 4, Height: 12, Speed: 5}
	b := NewBullet(cfg, 30, 400, components.HeadingUp)

	want := components.BoundingBox{X: 30, Y: 400, Width: 4, Height: 12}
	if b.Box != want {
		t.Errorf("Box: got %+v, want %+v", b.Box, want)
	}
	if b.Heading != components.HeadingUp {
		t.Errorf("Heading: got %v, want up", b.Heading)
	}
}
