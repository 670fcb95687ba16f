package config

import (
	"fmt"
	"os"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"gopkg.in/yaml.v3"
)

// GameConfig is the complete tunable configuration of a game session.
//
// Config file location: data/game.yaml
type GameConfig struct {
	Screen ScreenConfig `yaml:"screen"`
	Window WindowConfig `yaml:"window"`
	Swarm  SwarmConfig  `yaml:"swarm"`
	Player PlayerConfig `yaml:"player"`
	Bullet BulletConfig `yaml:"bullet"`
	Timing TimingConfig `yaml:"timing"`

	// Seed feeds the shooter-selection random source. 0 picks a time-based
	// seed at startup.
	Seed int64 `yaml:"seed"`
}

// ScreenConfig is the logical playfield size.
type ScreenConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// WindowConfig controls the desktop window only; the playfield is unaffected.
type WindowConfig struct {
	Title      string  `yaml:"title"`
	Scale      float64 `yaml:"scale"`
	Fullscreen bool    `yaml:"fullscreen"`
}

// SwarmConfig describes the initial alien grid.
type SwarmConfig struct {
	Rows        int `yaml:"rows"`
	Columns     int `yaml:"columns"`
	AlienWidth  int `yaml:"alienWidth"`
	AlienHeight int `yaml:"alienHeight"`
	GapX        int `yaml:"gapX"`
	GapY        int `yaml:"gapY"`
	OriginX     int `yaml:"originX"`
	OriginY     int `yaml:"originY"`
	// Step is the distance of one collective move.
	Step int `yaml:"step"`
	// RowTiers maps each row to a sprite tier. Empty means every row uses tier 0.
	RowTiers []int `yaml:"rowTiers"`
}

// PlayerConfig describes the ship.
type PlayerConfig struct {
	Width      int `yaml:"width"`
	Height     int `yaml:"height"`
	MoveAmount int `yaml:"moveAmount"`
	// ClampToScreen keeps the ship inside the playfield. When false the
	// ship may move past either edge.
	ClampToScreen bool `yaml:"clampToScreen"`
}

// BulletConfig describes both player and alien bullets.
type BulletConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	// Speed is the per-fast-tick magnitude applied to the bullet heading.
	Speed int `yaml:"speed"`
}

// TimingConfig holds the loop cadences. Values are yaml duration strings
// such as "50ms".
type TimingConfig struct {
	FastTick     time.Duration `yaml:"fastTick"`
	SlowTick     time.Duration `yaml:"slowTick"`
	GameOverHold time.Duration `yaml:"gameOverHold"`
}

// Default returns the built-in configuration.
func Default() *GameConfig {
	tiers := make([]int, len(defaultRowTiers))
	copy(tiers, defaultRowTiers)

	return &GameConfig{
		Screen: ScreenConfig{
			Width:  DefaultScreenWidth,
			Height: DefaultScreenHeight,
		},
		Window: WindowConfig{
			Title: DefaultWindowTitle,
			Scale: 1.0,
		},
		Swarm: SwarmConfig{
			Rows:        DefaultSwarmRows,
			Columns:     DefaultSwarmColumns,
			AlienWidth:  DefaultAlienWidth,
			AlienHeight: DefaultAlienHeight,
			GapX:        DefaultAlienGapX,
			GapY:        DefaultAlienGapY,
			OriginX:     DefaultSwarmOriginX,
			OriginY:     DefaultSwarmOriginY,
			Step:        DefaultSwarmStep,
			RowTiers:    tiers,
		},
		Player: PlayerConfig{
			Width:         DefaultPlayerWidth,
			Height:        DefaultPlayerHeight,
			MoveAmount:    DefaultPlayerMoveAmount,
			ClampToScreen: true,
		},
		Bullet: BulletConfig{
			Width:  DefaultBulletWidth,
			Height: DefaultBulletHeight,
			Speed:  DefaultBulletSpeed,
		},
		Timing: TimingConfig{
			FastTick:     DefaultFastTick,
			SlowTick:     DefaultSlowTick,
			GameOverHold: DefaultGameOverHold,
		},
	}
}

// LoadGameConfig loads a YAML game configuration from path.
//
// Fields missing from the file keep their Default() values.
//
// Parameters:
//   - path: config file path (e.g. "data/game.yaml")
//
// Returns:
//   - *GameConfig: the validated configuration
//   - error: read, parse or validation failure
func LoadGameConfig(path string) (*GameConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read game config: %w", err)
	}
	return ParseGameConfig(data)
}

// ParseGameConfig parses YAML bytes on top of Default() and validates the
// result.
func ParseGameConfig(data []byte) (*GameConfig, error) {
	cfg := Default()
	if err := cfg.Overlay(data); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game config: %w", err)
	}
	return cfg, nil
}

// Overlay applies a YAML fragment on top of the current values. Lists in the
// fragment replace lists in the config.
func (c *GameConfig) Overlay(data []byte) error {
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse game config: %w", err)
	}
	return nil
}

// Bounds returns the playfield size.
func (c *GameConfig) Bounds() components.Bounds {
	return components.Bounds{Width: c.Screen.Width, Height: c.Screen.Height}
}

// TierForRow returns the sprite tier of a grid row.
func (c *GameConfig) TierForRow(row int) int {
	if row < 0 || row >= len(c.Swarm.RowTiers) {
		return 0
	}
	return c.Swarm.RowTiers[row]
}

// Validate checks that the configuration describes a playable field:
//   - every size, step and interval is positive
//   - the initial grid and the player fit inside the screen
//   - RowTiers is empty or has one valid tier per row
func (c *GameConfig) Validate() error {
	if c.Screen.Width <= 0 || c.Screen.Height <= 0 {
		return fmt.Errorf("screen size must be positive: %dx%d", c.Screen.Width, c.Screen.Height)
	}

	s := c.Swarm
	if s.Rows <= 0 || s.Columns <= 0 {
		return fmt.Errorf("swarm grid must be positive: %dx%d", s.Rows, s.Columns)
	}
	if s.AlienWidth <= 0 || s.AlienHeight <= 0 {
		return fmt.Errorf("alien size must be positive: %dx%d", s.AlienWidth, s.AlienHeight)
	}
	if s.GapX < 0 || s.GapY < 0 {
		return fmt.Errorf("alien gaps must not be negative: %d,%d", s.GapX, s.GapY)
	}
	if s.OriginX < 0 || s.OriginY < 0 {
		return fmt.Errorf("swarm origin must not be negative: %d,%d", s.OriginX, s.OriginY)
	}
	if s.Step <= 0 {
		return fmt.Errorf("swarm step must be positive: %d", s.Step)
	}
	gridRight := s.OriginX + s.Columns*s.AlienWidth + (s.Columns-1)*s.GapX
	gridBottom := s.OriginY + s.Rows*s.AlienHeight + (s.Rows-1)*s.GapY
	if gridRight > c.Screen.Width || gridBottom > c.Screen.Height {
		return fmt.Errorf("swarm grid (%d,%d) does not fit the %dx%d screen",
			gridRight, gridBottom, c.Screen.Width, c.Screen.Height)
	}
	if len(s.RowTiers) != 0 && len(s.RowTiers) != s.Rows {
		return fmt.Errorf("rowTiers has %d entries, want %d", len(s.RowTiers), s.Rows)
	}
	for row, tier := range s.RowTiers {
		if tier < 0 || tier >= components.AlienTierCount {
			return fmt.Errorf("rowTiers[%d] = %d out of range [0,%d)", row, tier, components.AlienTierCount)
		}
	}

	p := c.Player
	if p.Width <= 0 || p.Height <= 0 {
		return fmt.Errorf("player size must be positive: %dx%d", p.Width, p.Height)
	}
	if p.Width > c.Screen.Width || p.Height > c.Screen.Height {
		return fmt.Errorf("player %dx%d does not fit the %dx%d screen",
			p.Width, p.Height, c.Screen.Width, c.Screen.Height)
	}
	if p.MoveAmount <= 0 {
		return fmt.Errorf("player moveAmount must be positive: %d", p.MoveAmount)
	}

	b := c.Bullet
	if b.Width <= 0 || b.Height <= 0 || b.Speed <= 0 {
		return fmt.Errorf("bullet size and speed must be positive: %dx%d speed %d", b.Width, b.Height, b.Speed)
	}

	if c.Timing.FastTick <= 0 || c.Timing.SlowTick <= 0 {
		return fmt.Errorf("tick intervals must be positive: fast %v slow %v", c.Timing.FastTick, c.Timing.SlowTick)
	}
	if c.Timing.GameOverHold < 0 {
		return fmt.Errorf("gameOverHold must not be negative: %v", c.Timing.GameOverHold)
	}

	if c.Window.Scale <= 0 {
		return fmt.Errorf("window scale must be positive: %v", c.Window.Scale)
	}
	return nil
}
