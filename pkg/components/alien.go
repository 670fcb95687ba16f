package components

// Alien is one member of the swarm.
type Alien struct {
	X      int
	Y      int
	Width  int
	Height int
	Box    BoundingBox
	Phase  AnimationPhase
	// Tier selects the sprite pair; rows of the grid share a tier.
	Tier      int
	Destroyed bool
	Gun       BulletSlot
}

// MoveTo places the alien at (x, y) and recomputes its box.
func (a *Alien) MoveTo(x, y int) {
	a.X = x
	a.Y = y
	a.Box = InsetBox(x, y, a.Width, a.Height)
}

// ToggleFrame flips the animation phase.
func (a *Alien) ToggleFrame() {
	a.Phase = a.Phase.Toggled()
}

// Slot implements Shooter.
func (a *Alien) Slot() *BulletSlot { return &a.Gun }

// Muzzle implements Shooter. Alien bullets spawn at the alien's position.
func (a *Alien) Muzzle() (int, int) { return a.X, a.Y }

// Heading implements Shooter.
func (a *Alien) Heading() Heading { return HeadingDown }

// BulletSprite implements Shooter.
func (a *Alien) BulletSprite() SpriteID { return SpriteAlienBullet }
