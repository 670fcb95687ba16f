// invaders-tui plays the game in a terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/terminal"
)

func main() {
	configPath := flag.String("config", "", "game config YAML (default: built-in values)")
	seed := flag.Int64("seed", 0, "random seed for alien fire (0: from config, then time based)")
	logPath := flag.String("log", "", "write logs to this file")
	flag.Parse()

	os.Exit(run(*configPath, *seed, *logPath))
}

func run(configPath string, seed int64, logPath string) int {
	log.SetOutput(io.Discard)
	if logPath != "" {
		f, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log file: %v\n", err)
			return 1
		}
		defer f.Close()
		log.SetOutput(f)
	}

	cfg := config.Default()
	if configPath != "" {
		var err error
		if cfg, err = config.LoadGameConfig(configPath); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
			return 1
		}
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	outcome := terminal.Run(ctx, screen, cfg, seed)
	screen.Fini()

	switch outcome {
	case game.OutcomeGameOver:
		fmt.Println("Game over.")
	case game.OutcomeStalemate:
		fmt.Println("The swarm is gone.")
	}
	return 0
}
