package systems

import (
	"testing"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

func newBulletTestState() (*game.GameState, *BulletSystem) {
	gs := game.NewGameState(components.Bounds{Width: 400, Height: 300})
	gs.Player = newTestPlayer(200, 250, 40, 40)
	cfg := config.BulletConfig{Width: 4, Height: 10, Speed: 10}
	return gs, NewBulletSystem(gs, cfg)
}

func TestShootSingleActiveBullet(t *testing.T) {
	gs, bullets := newBulletTestState()

	if !bullets.Shoot(gs.Player) {
		t.Fatal("first shot should be fired")
	}
	first := gs.Player.Gun.Bullet()
	if bullets.Shoot(gs.Player) {
		t.Error("second shot should be refused while the first bullet is live")
	}
	if gs.Player.Gun.Bullet() != first {
		t.Error("the live bullet must not be replaced")
	}
}

func TestShootSpawnsAtMuzzle(t *testing.T) {
	gs, bullets := newBulletTestState()
	alien := newTestAlien(30, 40, 20, 20)
	gs.Swarm.Add(alien)

	bullets.Shoot(gs.Player)
	bullets.Shoot(alien)

	pb := gs.Player.Gun.Bullet()
	if pb.X != 200 || pb.Y != 250 || pb.Heading != components.HeadingUp {
		t.Errorf("player bullet: got %+v", *pb)
	}
	ab := alien.Gun.Bullet()
	if ab.X != 30 || ab.Y != 40 || ab.Heading != components.HeadingDown {
		t.Errorf("alien bullet: got %+v", *ab)
	}
	if pb.Box != (components.BoundingBox{X: 200, Y: 250, Width: 4, Height: 10}) {
		t.Errorf("player bullet box: got %+v", pb.Box)
	}
}

func TestBulletAdvance(t *testing.T) {
	gs, bullets := newBulletTestState()
	alien := newTestAlien(30, 40, 20, 20)
	gs.Swarm.Add(alien)
	bullets.Shoot(gs.Player)
	bullets.Shoot(alien)

	bullets.Advance()

	pb := gs.Player.Gun.Bullet()
	if pb.Y != 240 || pb.Box.Y != 240 {
		t.Errorf("player bullet after advance: y=%d box.y=%d, want 240", pb.Y, pb.Box.Y)
	}
	ab := alien.Gun.Bullet()
	if ab.Y != 50 || ab.Box.Y != 50 {
		t.Errorf("alien bullet after advance: y=%d box.y=%d, want 50", ab.Y, ab.Box.Y)
	}
}

func TestBulletExpiry(t *testing.T) {
	bounds := components.Bounds{Width: 400, Height: 300}

	tests := []struct {
		name string
		y    int
		up   bool
		want bool
	}{
		{"player bullet still visible", -9, true, false},
		{"player bullet bottom at edge", -10, true, false},
		{"player bullet fully out", -11, true, true},
		{"alien bullet at edge", 300, false, false},
		{"alien bullet past edge", 301, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &components.Bullet{Y: tt.y, Height: 10}
			var got bool
			if tt.up {
				got = PlayerBulletExpired(b)
			} else {
				got = AlienBulletExpired(b, bounds)
			}
			if got != tt.want {
				t.Errorf("expired at y=%d: got %v, want %v", tt.y, got, tt.want)
			}
		})
	}
}

func TestExpiredSlotCanShootAgain(t *testing.T) {
	gs, bullets := newBulletTestState()
	bullets.Shoot(gs.Player)
	gs.Player.Gun.Bullet().MoveBy(-1000)

	if !bullets.ExpirePlayerBullet() {
		t.Fatal("bullet far above the screen should expire")
	}
	if gs.Player.Gun.Armed() {
		t.Error("slot should be empty after expiry")
	}
	if !bullets.Shoot(gs.Player) {
		t.Error("player should be able to fire again after expiry")
	}
}
