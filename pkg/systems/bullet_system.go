package systems

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
)

// BulletSystem creates, moves and expires bullets.
type BulletSystem struct {
	gameState *game.GameState
	cfg       config.BulletConfig
}

// NewBulletSystem creates a bullet system.
//
// Parameters:
//   - gs: the game state whose shooters own the bullets
//   - cfg: bullet size and per-tick speed
func NewBulletSystem(gs *game.GameState, cfg config.BulletConfig) *BulletSystem {
	return &BulletSystem{
		gameState: gs,
		cfg:       cfg,
	}
}

// Shoot gives the shooter a new bullet at its muzzle. It is a no-op, and
// returns false, while the shooter already owns a live bullet.
func (s *BulletSystem) Shoot(shooter components.Shooter) bool {
	slot := shooter.Slot()
	if slot.Armed() {
		return false
	}
	x, y := shooter.Muzzle()
	return slot.Load(entities.NewBullet(s.cfg, x, y, shooter.Heading()))
}

// Advance moves every live bullet one tick: the player's and each alien's.
func (s *BulletSystem) Advance() {
	if b := s.gameState.Player.Gun.Bullet(); b != nil {
		s.tick(b)
	}
	for _, alien := range s.gameState.Swarm.Aliens() {
		if b := alien.Gun.Bullet(); b != nil {
			s.tick(b)
		}
	}
}

func (s *BulletSystem) tick(b *components.Bullet) {
	b.MoveBy(s.cfg.Speed * int(b.Heading))
}

// ExpirePlayerBullet releases the player's bullet once it has left the top
// of the screen. It returns true when a bullet was released.
func (s *BulletSystem) ExpirePlayerBullet() bool {
	slot := &s.gameState.Player.Gun
	if b := slot.Bullet(); b != nil && PlayerBulletExpired(b) {
		slot.Release()
		return true
	}
	return false
}

// ExpireAlienBullet releases an alien's bullet once it has left the bottom
// of the screen.
func (s *BulletSystem) ExpireAlienBullet(alien *components.Alien) bool {
	if b := alien.Gun.Bullet(); b != nil && AlienBulletExpired(b, s.gameState.Bounds) {
		alien.Gun.Release()
		return true
	}
	return false
}

// PlayerBulletExpired reports whether b has fully exited the top edge.
func PlayerBulletExpired(b *components.Bullet) bool {
	return b.Y+b.Height < 0
}

// AlienBulletExpired reports whether b has passed the bottom edge.
func AlienBulletExpired(b *components.Bullet, bounds components.Bounds) bool {
	return b.Y > bounds.Height
}
