package components

// Bullet is a projectile travelling vertically. Its box always matches its
// position and size.
type Bullet struct {
	X       int
	Y       int
	Width   int
	Height  int
	Box     BoundingBox
	Heading Heading
}

// MoveBy shifts the bullet vertically by dy and keeps the box in sync.
func (b *Bullet) MoveBy(dy int) {
	b.Y += dy
	b.Box.Y += dy
}

// BulletSlot holds the single bullet a shooter may own.
//
// The zero value is an empty slot. Loading an occupied slot is refused, so a
// shooter can never hold two live bullets.
type BulletSlot struct {
	bullet *Bullet
}

// Armed reports whether the slot holds a live bullet.
func (s *BulletSlot) Armed() bool {
	return s.bullet != nil
}

// Bullet returns the live bullet, or nil when the slot is empty.
func (s *BulletSlot) Bullet() *Bullet {
	return s.bullet
}

// Load stores b in the slot. It returns false, leaving the slot untouched,
// when a bullet is already live.
func (s *BulletSlot) Load(b *Bullet) bool {
	if s.bullet != nil || b == nil {
		return false
	}
	s.bullet = b
	return true
}

// Release empties the slot.
func (s *BulletSlot) Release() {
	s.bullet = nil
}

// Shooter is an entity permitted to own a bullet.
type Shooter interface {
	// Slot returns the shooter's bullet slot.
	Slot() *BulletSlot
	// Muzzle returns where a new bullet spawns.
	Muzzle() (x, y int)
	// Heading returns the direction the shooter fires in.
	Heading() Heading
	// BulletSprite returns the sprite used for the shooter's bullets.
	BulletSprite() SpriteID
}
