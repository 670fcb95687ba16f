package entities

import (
	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
)

// NewBullet creates a bullet at (x, y) travelling in heading.
//
// Parameters:
//   - cfg: bullet size and speed
//   - x, y: spawn position (the shooter's muzzle)
//   - heading: HeadingUp for the player, HeadingDown for aliens
func NewBullet(cfg config.BulletConfig, x, y int, heading components.Heading) *components.Bullet {
	return &components.Bullet{
		X:       x,
		Y:       y,
		Width:   cfg.Width,
		Height:  cfg.Height,
		Box:     components.BoundingBox{X: x, Y: y, Width: cfg.Width, Height: cfg.Height},
		Heading: heading,
	}
}
