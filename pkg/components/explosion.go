package components

// Explosion marks where an alien was destroyed. It is drawn with
// SpriteAlienDestroyed and cleared by the first fast tick after it has
// been presented at least once.
type Explosion struct {
	X     int
	Y     int
	Drawn bool
}
