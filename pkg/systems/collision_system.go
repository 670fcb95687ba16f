package systems

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/ecs"
	"github.com/decker502/invaders/pkg/game"
)

// CollisionResult summarises one evaluation pass.
type CollisionResult struct {
	PlayerHit           bool
	ExpiredAlienBullets int
	PlayerBulletExpired bool
	DestroyedAlien      ecs.EntityID // 0 when no alien was hit
}

// CollisionSystem evaluates bullet hits and bullet expiry.
type CollisionSystem struct {
	gameState *game.GameState
	bullets   *BulletSystem
}

// NewCollisionSystem creates a collision system.
//
// Parameters:
//   - gs: the game state to evaluate
//   - bullets: used to expire bullets that left the screen
func NewCollisionSystem(gs *game.GameState, bullets *BulletSystem) *CollisionSystem {
	return &CollisionSystem{
		gameState: gs,
		bullets:   bullets,
	}
}

// Update runs one evaluation pass, in this order:
//  1. every alien bullet: expire it if it left the bottom, otherwise test it
//     against the player and raise game over on a hit
//  2. the player bullet: expire it if it left the top
//  3. the player bullet: scan aliens in swarm order and destroy the first
//     one it overlaps, releasing the bullet
//
// Both hit checks run on every pass; one pass can destroy an alien and end
// the game.
func (s *CollisionSystem) Update() CollisionResult {
	var result CollisionResult
	gs := s.gameState
	player := gs.Player

	for _, alien := range gs.Swarm.Aliens() {
		if s.bullets.ExpireAlienBullet(alien) {
			result.ExpiredAlienBullets++
			continue
		}
		b := alien.Gun.Bullet()
		if b == nil {
			continue
		}
		if components.Overlaps(b.Box, player.Box) {
			alien.Gun.Release()
			result.PlayerHit = true
		}
	}
	if result.PlayerHit {
		log.Printf("[CollisionSystem] Player hit at x=%d", player.X)
		gs.SetOutcome(game.OutcomeGameOver)
	}

	result.PlayerBulletExpired = s.bullets.ExpirePlayerBullet()

	if b := player.Gun.Bullet(); b != nil {
		for _, id := range gs.Swarm.IDs() {
			alien, ok := gs.Swarm.Get(id)
			if !ok || !components.Overlaps(b.Box, alien.Box) {
				continue
			}
			gs.Swarm.MarkDestroyed(id)
			gs.AddExplosion(alien.X, alien.Y)
			player.Gun.Release()
			result.DestroyedAlien = id
			break
		}
		if gs.Swarm.Compact() > 0 {
			log.Printf("[CollisionSystem] Alien %d destroyed, %d left", result.DestroyedAlien, gs.Swarm.Len())
		}
	}

	return result
}
