package main

import (
	"io"
	"log"
	"testing"
	"time"

	"github.com/decker502/invaders/pkg/components"
	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
)

func newPilotState(playerX int, aliens ...*components.Alien) *game.GameState {
	gs := game.NewGameState(components.Bounds{Width: 1280, Height: 720})
	gs.Player = &components.Player{Y: 592, Width: 128, Height: 128}
	gs.Player.MoveTo(playerX)
	for _, a := range aliens {
		gs.Swarm.Add(a)
	}
	return gs
}

func newPilotAlien(x, y int) *components.Alien {
	a := &components.Alien{Width: 50, Height: 50}
	a.MoveTo(x, y)
	return a
}

func TestAutopilot(t *testing.T) {
	// alien box spans x 110..140
	tests := []struct {
		name    string
		playerX int
		want    game.Action
	}{
		{"left of target", 50, game.ActionMoveRight},
		{"on the box edge", 110, game.ActionMoveRight},
		{"aligned", 120, game.ActionFire},
		{"right of target", 140, game.ActionMoveLeft},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newPilotState(tt.playerX, newPilotAlien(100, 100))
			queue := &game.ActionQueue{}
			autopilot(gs, queue)
			if got := queue.PollInput(); got != tt.want {
				t.Errorf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestAutopilotEmptySwarm(t *testing.T) {
	gs := newPilotState(100)
	queue := &game.ActionQueue{}
	autopilot(gs, queue)
	if queue.Len() != 0 {
		t.Errorf("no target should queue nothing, got %d actions", queue.Len())
	}
}

func TestPickTargetPrefersLowestInColumn(t *testing.T) {
	top := newPilotAlien(100, 100)
	bottom := newPilotAlien(100, 300)
	far := newPilotAlien(600, 400)
	gs := newPilotState(120, top, bottom, far)

	if got := pickTarget(gs); got != bottom {
		t.Errorf("target: got alien at (%d, %d), want (100, 300)", got.X, got.Y)
	}
}

func TestRunGameDeterministic(t *testing.T) {
	log.SetOutput(io.Discard)
	cfg := config.Default()

	a := runGame(cfg, 1, 7, 10*time.Millisecond, 30*time.Second, true)
	b := runGame(cfg, 1, 7, 10*time.Millisecond, 30*time.Second, true)

	if a.outcome != b.outcome || a.gameTime != b.gameTime || a.stats != b.stats {
		t.Errorf("same seed gave different runs:\n%+v\n%+v", a, b)
	}
	if a.stats.SlowTicks == 0 {
		t.Error("the swarm should have moved")
	}
}

func TestOutcomeCounts(t *testing.T) {
	all := []runStats{
		{outcome: game.OutcomeGameOver},
		{outcome: game.OutcomeGameOver},
		{outcome: game.OutcomeRunning},
	}
	counts := outcomeCounts(all)
	if counts[game.OutcomeGameOver] != 2 || counts[game.OutcomeRunning] != 1 || counts[game.OutcomeStalemate] != 0 {
		t.Errorf("counts: got %v", counts)
	}
}
