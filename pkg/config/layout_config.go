package config

import "time"

// Playfield layout defaults.
// Grid spacing and sprite sizes are tuned to fit a 5x11 swarm in 1280x720.
const (
	// DefaultScreenWidth is the logical playfield width in pixels.
	DefaultScreenWidth = 1280

	// DefaultScreenHeight is the logical playfield height in pixels.
	DefaultScreenHeight = 720

	// DefaultWindowTitle is the desktop window title.
	DefaultWindowTitle = "Space Invaders"
)

// Swarm grid defaults.
const (
	// DefaultSwarmRows is the number of grid rows; row 0 is topmost.
	DefaultSwarmRows = 5

	// DefaultSwarmColumns is the number of aliens per row.
	DefaultSwarmColumns = 11

	// DefaultAlienWidth and DefaultAlienHeight are the alien sprite size.
	DefaultAlienWidth  = 48
	DefaultAlienHeight = 48

	// DefaultAlienGapX and DefaultAlienGapY separate neighbouring aliens.
	DefaultAlienGapX = 16
	DefaultAlienGapY = 16

	// DefaultSwarmOriginX and DefaultSwarmOriginY place the top-left alien.
	DefaultSwarmOriginX = 64
	DefaultSwarmOriginY = 64

	// DefaultSwarmStep is how far the swarm moves per slow tick.
	DefaultSwarmStep = 20
)

// Player defaults.
const (
	DefaultPlayerWidth  = 128
	DefaultPlayerHeight = 128

	// DefaultPlayerMoveAmount is the horizontal distance per move event.
	DefaultPlayerMoveAmount = 20
)

// Bullet defaults.
const (
	DefaultBulletWidth  = 8
	DefaultBulletHeight = 24

	// DefaultBulletSpeed is the distance a bullet travels per fast tick.
	DefaultBulletSpeed = 10
)

// Cadence defaults.
const (
	DefaultFastTick     = 50 * time.Millisecond
	DefaultSlowTick     = 500 * time.Millisecond
	DefaultGameOverHold = 2 * time.Second
)

// defaultRowTiers maps grid rows to alien sprite tiers: one row of the
// small tier, two of the middle, two of the large.
var defaultRowTiers = []int{0, 1, 1, 2, 2}
