package entities

import (
	"log"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

// NewAlien creates an alien for grid cell (row, col).
//
// Parameters:
//   - cfg: game configuration (grid origin, spacing, sizes, row tiers)
//   - row: grid row, 0 is topmost
//   - col: grid column, 0 is leftmost
func NewAlien(cfg *config.GameConfig, row, col int) *components.Alien {
	s := cfg.Swarm
	x := s.OriginX + col*(s.AlienWidth+s.GapX)
	y := s.OriginY + row*(s.AlienHeight+s.GapY)

	alien := &components.Alien{
		Width:  s.AlienWidth,
		Height: s.AlienHeight,
		Phase:  components.PhaseA,
		Tier:   cfg.TierForRow(row),
	}
	alien.MoveTo(x, y)
	return alien
}

// NewPlayer creates the ship horizontally centred on the bottom row of the
// playfield.
func NewPlayer(cfg *config.GameConfig) *components.Player {
	p := &components.Player{
		Y:      cfg.Screen.Height - cfg.Player.Height,
		Width:  cfg.Player.Width,
		Height: cfg.Player.Height,
	}
	p.MoveTo(cfg.Screen.Width / 2)
	return p
}

// PopulateSwarm fills gs.Swarm with the configured grid in row-major order.
// It is the only place aliens are ever added.
func PopulateSwarm(gs *game.GameState, cfg *config.GameConfig) {
	for row := 0; row < cfg.Swarm.Rows; row++ {
		for col := 0; col < cfg.Swarm.Columns; col++ {
			gs.Swarm.Add(NewAlien(cfg, row, col))
		}
	}
	log.Printf("[InvaderFactory] Populated swarm: %d rows x %d columns", cfg.Swarm.Rows, cfg.Swarm.Columns)
}

// NewGameState creates a fully populated state: player plus swarm.
func NewGameState(cfg *config.GameConfig) *game.GameState {
	gs := game.NewGameState(cfg.Bounds())
	gs.Player = NewPlayer(cfg)
	PopulateSwarm(gs, cfg)
	return gs
}
