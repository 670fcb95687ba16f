package components

// Player is the ship controlled by input. Y never changes after creation.
type Player struct {
	X      int
	Y      int
	Width  int
	Height int
	Box    BoundingBox
	Gun    BulletSlot
}

// MoveTo places the player at x on its fixed row and recomputes the box.
func (p *Player) MoveTo(x int) {
	p.X = x
	p.Box = InsetBox(x, p.Y, p.Width, p.Height)
}

// Slot implements Shooter.
func (p *Player) Slot() *BulletSlot { return &p.Gun }

// Muzzle implements Shooter. The player's row is the fixed near-bottom
// firing line.
func (p *Player) Muzzle() (int, int) { return p.X, p.Y }

// Heading implements Shooter.
func (p *Player) Heading() Heading { return HeadingUp }

// BulletSprite implements Shooter.
func (p *Player) BulletSprite() SpriteID { return SpritePlayerBullet }
