package terminal

import (
	"context"
	"log"
	"math/rand"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/resource"
	"github.com/decker502/invaders/pkg/scenes"
)

// loopInterval is how often the loop reads the clock. It only has to be
// well below the fast tick.
const loopInterval = 5 * time.Millisecond

// Run plays one game on screen until it ends, the player quits or ctx is
// cancelled. screen must be initialised; Run does not finalise it.
//
// Returns the outcome; OutcomeRunning means the game was interrupted.
func Run(ctx context.Context, screen tcell.Screen, cfg *config.GameConfig, seed int64) game.Outcome {
	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	input := NewInput(screen, events)
	renderer := NewRenderer(screen, cfg.Bounds(), DefaultGlyphs(), resource.SpriteSizes(cfg))
	scene := scenes.NewGameScene(cfg, renderer, input, rand.New(rand.NewSource(seed)))
	clock := game.NewMonotonicClock()

	ticker := time.NewTicker(loopInterval)
	defer ticker.Stop()

	log.Printf("[Terminal] Game started, seed %d", seed)
	for {
		select {
		case <-ctx.Done():
			log.Printf("[Terminal] Interrupted")
			return scene.Outcome()
		case <-ticker.C:
		}

		running := scene.Step(clock.Now())
		if input.QuitRequested() {
			log.Printf("[Terminal] Quit requested")
			return scene.Outcome()
		}
		if !running {
			break
		}
	}

	outcome := scene.Outcome()
	log.Printf("[Terminal] Game finished: %s", outcome)
	renderer.DrawBanner(bannerText(outcome))

	hold := time.NewTimer(cfg.Timing.GameOverHold)
	defer hold.Stop()
	select {
	case <-hold.C:
	case <-ctx.Done():
	}
	return outcome
}

func bannerText(o game.Outcome) string {
	if o == game.OutcomeGameOver {
		return "GAME OVER"
	}
	return "NO INVADERS LEFT"
}
