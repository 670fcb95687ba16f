package components

import "fmt"

// SpriteID names a sprite handle known to the asset loader.
type SpriteID string

const (
	SpritePlayer         SpriteID = "SPRITE_PLAYER"
	SpriteAlienDestroyed SpriteID = "SPRITE_ALIEN_DESTROYED"
	SpritePlayerBullet   SpriteID = "SPRITE_PLAYER_BULLET"
	SpriteAlienBullet    SpriteID = "SPRITE_ALIEN_BULLET"
)

// AlienTierCount is the number of distinct alien sprite pairs.
const AlienTierCount = 3

// AlienSprite returns the sprite for an alien of the given tier in the given
// animation phase, e.g. SPRITE_ALIEN_1_B.
func AlienSprite(tier int, phase AnimationPhase) SpriteID {
	return SpriteID(fmt.Sprintf("SPRITE_ALIEN_%d_%s", tier, phase))
}

// AllSprites lists every sprite the game may request.
func AllSprites() []SpriteID {
	ids := []SpriteID{SpritePlayer, SpriteAlienDestroyed, SpritePlayerBullet, SpriteAlienBullet}
	for tier := 0; tier < AlienTierCount; tier++ {
		ids = append(ids, AlienSprite(tier, PhaseA), AlienSprite(tier, PhaseB))
	}
	return ids
}
