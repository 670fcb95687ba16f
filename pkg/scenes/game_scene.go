package scenes

import (
	"log"
	"math/rand"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/entities"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/systems"
)

// Stats counts what a scene has done so far.
type Stats struct {
	Iterations int
	FastTicks  int
	SlowTicks  int
	Frames     int
	// BlockedMoves counts slow ticks on which the swarm could not move at all.
	BlockedMoves   int
	AliensLeft     int
	AliensShotDown int
}

// GameScene is the gameplay loop body.
//
// A frontend reads its clock once per iteration and hands the reading to
// Step. The scene owns the game state and every system; all of them are
// touched only from the goroutine calling Step.
type GameScene struct {
	cfg       *config.GameConfig
	gameState *game.GameState

	bulletSystem    *systems.BulletSystem
	collisionSystem *systems.CollisionSystem
	inputSystem     *systems.InputSystem
	fireSystem      *systems.SwarmFireSystem
	renderSystem    *systems.RenderSystem
	director        *systems.SwarmMovementDirector

	fastTimer components.TimerComponent
	slowTimer components.TimerComponent

	started bool
	stats   Stats
}

// NewGameScene creates a scene with a freshly populated swarm.
//
// Parameters:
//   - cfg: validated game configuration
//   - renderer: frontend drawing collaborator
//   - input: frontend input source
//   - rng: random source used to pick the shooting alien
func NewGameScene(cfg *config.GameConfig, renderer game.Renderer, input game.InputSource, rng *rand.Rand) *GameScene {
	gs := entities.NewGameState(cfg)
	bullets := systems.NewBulletSystem(gs, cfg.Bullet)

	s := &GameScene{
		cfg:             cfg,
		gameState:       gs,
		bulletSystem:    bullets,
		collisionSystem: systems.NewCollisionSystem(gs, bullets),
		inputSystem:     systems.NewInputSystem(gs, input, bullets, cfg.Player),
		fireSystem:      systems.NewSwarmFireSystem(gs, bullets, rng),
		renderSystem:    systems.NewRenderSystem(gs, renderer),
		director:        systems.NewSwarmMovementDirector(gs.Bounds),
		fastTimer:       components.TimerComponent{Name: "fast_tick", Interval: cfg.Timing.FastTick},
		slowTimer:       components.TimerComponent{Name: "slow_tick", Interval: cfg.Timing.SlowTick},
	}
	s.stats.AliensLeft = gs.Swarm.Len()
	return s
}

// Step runs one loop iteration at clock reading now and reports whether the
// game is still running.
//
// Order within an iteration: input, collision evaluation, terminal check,
// fast tick body, slow tick body, redraw. The first call starts both timers
// at now and draws the opening frame.
func (s *GameScene) Step(now time.Duration) bool {
	gs := s.gameState
	if gs.IsOver() {
		return false
	}
	if !s.started {
		s.started = true
		s.fastTimer.Reset(now)
		s.slowTimer.Reset(now)
		log.Printf("[GameScene] Started: %d aliens, fast=%v slow=%v",
			gs.Swarm.Len(), s.fastTimer.Interval, s.slowTimer.Interval)
		s.draw()
	}
	s.stats.Iterations++

	redraw := s.inputSystem.Update()

	result := s.collisionSystem.Update()
	if result.DestroyedAlien != 0 {
		s.stats.AliensShotDown++
		redraw = true
	}
	s.stats.AliensLeft = gs.Swarm.Len()

	if gs.Swarm.Len() == 0 {
		gs.SetOutcome(game.OutcomeStalemate)
	}
	if gs.IsOver() {
		log.Printf("[GameScene] Game ended: %s after %d slow ticks", gs.Outcome(), s.stats.SlowTicks)
		s.draw()
		return false
	}

	if s.fastTimer.Fire(now) {
		s.stats.FastTicks++
		gs.ClearExplosions()
		s.bulletSystem.Advance()
		redraw = true
	}

	if s.slowTimer.Fire(now) {
		s.stats.SlowTicks++
		if !s.director.Advance(gs.Swarm, s.cfg.Swarm.Step) {
			s.stats.BlockedMoves++
		}
		s.fireSystem.Update()
		redraw = true
	}

	if redraw {
		s.draw()
	}
	return true
}

func (s *GameScene) draw() {
	s.renderSystem.Draw()
	s.stats.Frames = s.renderSystem.Frames()
}

// Outcome returns the game outcome so far.
func (s *GameScene) Outcome() game.Outcome {
	return s.gameState.Outcome()
}

// State exposes the game state for frontends and tests.
func (s *GameScene) State() *game.GameState {
	return s.gameState
}

// Stats returns a snapshot of the scene counters.
func (s *GameScene) Stats() Stats {
	return s.stats
}

// Redraw draws the current state again, e.g. after a window resize.
func (s *GameScene) Redraw() {
	s.draw()
}
