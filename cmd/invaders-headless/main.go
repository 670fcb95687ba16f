// invaders-headless plays games without a display: a manual clock drives
// the loop and an autopilot provides input. It prints one line per run and
// an aggregate.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/scenes"
)

type runStats struct {
	runIndex int
	seed     int64
	outcome  game.Outcome
	gameTime time.Duration
	stats    scenes.Stats
}

// nullRenderer discards every frame; the scene still counts them.
type nullRenderer struct{}

func (nullRenderer) ClearFrame()                              {}
func (nullRenderer) DrawEntity(components.SpriteID, int, int) {}
func (nullRenderer) PresentFrame()                            {}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var limit time.Duration
	var step time.Duration
	var configPath string
	var pilot bool
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of games")
	flag.Int64Var(&seedBase, "seed-base", 42, "seed of run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.DurationVar(&limit, "limit", 10*time.Minute, "maximum game time per run")
	flag.DurationVar(&step, "step", 10*time.Millisecond, "clock advance per loop iteration")
	flag.StringVar(&configPath, "config", "", "game config YAML (default: built-in values)")
	flag.BoolVar(&pilot, "autopilot", true, "steer and fire automatically")
	flag.BoolVar(&verbose, "verbose", false, "enable log output")
	flag.Parse()

	if !verbose {
		log.SetOutput(io.Discard)
	}
	if runs <= 0 || step <= 0 || limit <= 0 {
		fmt.Println("error: -runs, -step and -limit must be > 0")
		return
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(configPath); err != nil {
			fmt.Printf("error: %v\n", err)
			return
		}
	}

	fmt.Printf("=== Headless Invaders Report ===\n")
	fmt.Printf("runs=%d seed_base=%d seed_step=%d step=%v limit=%v autopilot=%v\n\n",
		runs, seedBase, seedStep, step, limit, pilot)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		rs := runGame(cfg, i+1, seedBase+int64(i)*seedStep, step, limit, pilot)
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

func runGame(cfg *config.GameConfig, runIndex int, seed int64, step, limit time.Duration, pilot bool) runStats {
	queue := &game.ActionQueue{}
	scene := scenes.NewGameScene(cfg, nullRenderer{}, queue, rand.New(rand.NewSource(seed)))
	clock := &game.ManualClock{}

	for clock.Now() <= limit {
		if pilot {
			autopilot(scene.State(), queue)
		}
		if !scene.Step(clock.Now()) {
			break
		}
		clock.Advance(step)
	}

	return runStats{
		runIndex: runIndex,
		seed:     seed,
		outcome:  scene.Outcome(),
		gameTime: clock.Now(),
		stats:    scene.Stats(),
	}
}

// autopilot queues one action: steer until a bullet fired from the
// player's x would land inside the target's box, then fire.
func autopilot(gs *game.GameState, queue *game.ActionQueue) {
	target := pickTarget(gs)
	if target == nil {
		return
	}
	x := gs.Player.X

	switch {
	case x <= target.Box.X:
		queue.Push(game.ActionMoveRight)
	case x >= target.Box.X+target.Box.Width:
		queue.Push(game.ActionMoveLeft)
	default:
		queue.Push(game.ActionFire)
	}
}

// pickTarget returns the alien horizontally closest to the player,
// preferring the lowest one in a column.
func pickTarget(gs *game.GameState) *components.Alien {
	var best *components.Alien
	bestDist := 0
	for _, a := range gs.Swarm.Aliens() {
		d := a.Box.X + a.Box.Width/2 - gs.Player.X
		if d < 0 {
			d = -d
		}
		if best == nil || d < bestDist || (d == bestDist && a.Y > best.Y) {
			best, bestDist = a, d
		}
	}
	return best
}

func printRun(rs runStats) {
	fmt.Printf("run %d seed=%d outcome=%s time=%v slow_ticks=%d shot_down=%d left=%d blocked=%d frames=%d\n",
		rs.runIndex, rs.seed, rs.outcome, rs.gameTime, rs.stats.SlowTicks,
		rs.stats.AliensShotDown, rs.stats.AliensLeft, rs.stats.BlockedMoves, rs.stats.Frames)
}

func printAggregate(all []runStats) {
	counts := outcomeCounts(all)
	shot := 0
	for _, rs := range all {
		shot += rs.stats.AliensShotDown
	}
	fmt.Printf("\n=== Aggregate ===\n")
	fmt.Printf("game_over=%d stalemate=%d unfinished=%d\n",
		counts[game.OutcomeGameOver], counts[game.OutcomeStalemate], counts[game.OutcomeRunning])
	if len(all) > 0 {
		fmt.Printf("avg_shot_down=%.1f\n", float64(shot)/float64(len(all)))
	}
}

func outcomeCounts(all []runStats) map[game.Outcome]int {
	counts := make(map[game.Outcome]int)
	for _, rs := range all {
		counts[rs.outcome]++
	}
	return counts
}
