package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/invaders/pkg/app"
	"github.com/decker502/invaders/pkg/embedded"
)

var (
	verbose        = flag.Bool("verbose", false, "enable log output")
	configPath     = flag.String("config", "", "game config YAML on disk (default: embedded data/game.yaml)")
	seed           = flag.Int64("seed", 0, "random seed for alien fire (0: from config, then time based)")
	saveUserConfig = flag.Bool("save-config", false, "store the effective config as the per-user override")
)

func main() {
	flag.Parse()

	// assetsFS and dataFS are declared in embed.go
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		ConfigPath:     *configPath,
		Seed:           *seed,
		SaveUserConfig: *saveUserConfig,
	})
	if err != nil {
		log.Fatalf("failed to start game: %v", err)
	}
	// log output is discarded from here on unless -verbose

	cfg := gameApp.GameConfig()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(int(float64(cfg.Screen.Width)*cfg.Window.Scale), int(float64(cfg.Screen.Height)*cfg.Window.Scale))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)
	ebiten.SetTPS(ebiten.DefaultTPS)

	if err := ebiten.RunGame(gameApp); err != nil {
		fmt.Fprintf(os.Stderr, "game stopped: %v\n", err)
		os.Exit(1)
	}
}
