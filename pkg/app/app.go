// Package app wraps the game for ebiten.
//
// The desktop binary (main.go) and the ebitenmobile binding
// (mobile/mobile.go) both create the game through NewApp.
package app

import (
	"fmt"
	"image/color"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/decker502/invaders/pkg/config"
	"github.com/decker502/invaders/pkg/embedded"
	"github.com/decker502/invaders/pkg/game"
	"github.com/decker502/invaders/pkg/resource"
	"github.com/decker502/invaders/pkg/scenes"
	"github.com/decker502/invaders/pkg/utils"
)

const (
	embeddedGameConfig      = "data/game.yaml"
	embeddedResourcesConfig = "data/resources.yaml"
	spriteGroup             = "sprites"

	bannerScale = 4
)

// Config holds the startup options.
type Config struct {
	// Verbose enables log output.
	Verbose bool
	// ConfigPath loads the game config from disk instead of the embedded
	// data/game.yaml.
	ConfigPath string
	// Seed overrides the configured random seed when non-zero.
	Seed int64
	// SaveUserConfig writes the effective config to the per-user store.
	SaveUserConfig bool
}

// App implements ebiten.Game around a GameScene.
type App struct {
	cfg      *config.GameConfig
	scene    *scenes.GameScene
	renderer *FrameRenderer
	input    *utils.InputCollector
	clock    game.Clock

	bannerFace   text.Face
	touchOverlay bool

	running bool
	endedAt time.Duration

	pendingWindowSizeReset   bool
	windowSizeResetCountdown int
}

// NewApp loads configuration and sprites and creates the game.
// Unless opts.Verbose is set, log output is discarded once the game has
// been created; on error the logger is left untouched so the caller can
// report the failure.
//
// embedded.Init must have been called first.
func NewApp(opts Config) (app *App, err error) {
	if !opts.Verbose {
		out, flags := log.Writer(), log.Flags()
		log.SetOutput(io.Discard)
		log.SetFlags(0)
		defer func() {
			if err != nil {
				log.SetOutput(out)
				log.SetFlags(flags)
			}
		}()
	}

	cfg, err := LoadGameConfig(opts)
	if err != nil {
		return nil, err
	}

	rm := resource.NewResourceManager(embedded.ReadFile)
	if err := rm.LoadResourceConfig(embeddedResourcesConfig); err != nil {
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}
	sprites, err := rm.LoadSprites(spriteGroup, resource.SpriteSizes(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to load sprites: %w", err)
	}

	seed := ResolveSeed(opts.Seed, cfg.Seed)
	log.Printf("[App] Seed %d", seed)

	renderer := NewFrameRenderer(ToEbitenImages(sprites))
	input := utils.NewInputCollector(cfg.Screen.Width)

	return &App{
		cfg:          cfg,
		scene:        scenes.NewGameScene(cfg, renderer, input, rand.New(rand.NewSource(seed))),
		renderer:     renderer,
		input:        input,
		clock:        game.NewMonotonicClock(),
		bannerFace:   text.NewGoXFace(basicfont.Face7x13),
		touchOverlay: utils.IsMobile(),
		running:      true,
	}, nil
}

// LoadGameConfig builds the effective game config: the embedded (or
// ConfigPath) YAML, then the per-user overrides. An unavailable user store
// is logged and ignored.
func LoadGameConfig(opts Config) (*config.GameConfig, error) {
	var cfg *config.GameConfig
	var err error
	if opts.ConfigPath != "" {
		cfg, err = config.LoadGameConfig(opts.ConfigPath)
	} else {
		var data []byte
		data, err = embedded.ReadFile(embeddedGameConfig)
		if err != nil {
			return nil, fmt.Errorf("failed to read embedded game config: %w", err)
		}
		cfg, err = config.ParseGameConfig(data)
	}
	if err != nil {
		return nil, err
	}

	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Storage directory unavailable: %v", err)
	}
	store, err := config.OpenUserStore(config.UserConfigAppName)
	if err != nil {
		log.Printf("[App] User config unavailable: %v", err)
	}
	if err := config.ApplyUserOverrides(store, cfg); err != nil {
		log.Printf("[App] Ignoring user config: %v", err)
	}
	if opts.SaveUserConfig {
		if err := config.SaveUserConfig(store, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// ResolveSeed picks the random seed: the flag, then the config, then the
// current time.
func ResolveSeed(flagSeed, configSeed int64) int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	if configSeed != 0 {
		return configSeed
	}
	return time.Now().UnixNano()
}

// GameConfig returns the effective configuration.
func (a *App) GameConfig() *config.GameConfig {
	return a.cfg
}

// Update runs one loop iteration per ebiten tick.
func (a *App) Update() error {
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			a.resetWindowSize()
			a.pendingWindowSizeReset = false
		}
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		if ebiten.IsFullscreen() {
			ebiten.SetFullscreen(false)
			if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
				ebiten.RestoreWindow()
			}
			// the window manager needs a few frames before it accepts a size
			a.pendingWindowSizeReset = true
			a.windowSizeResetCountdown = 3
		} else {
			ebiten.SetFullscreen(true)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("[App] Quit requested")
		return ebiten.Termination
	}

	now := a.clock.Now()
	if !a.running {
		if now-a.endedAt >= a.cfg.Timing.GameOverHold {
			return ebiten.Termination
		}
		return nil
	}

	a.input.Collect()
	if !a.scene.Step(now) {
		a.running = false
		a.endedAt = now
		log.Printf("[App] Game finished: %s", a.scene.Outcome())
	}
	return nil
}

func (a *App) resetWindowSize() {
	w := int(float64(a.cfg.Screen.Width) * a.cfg.Window.Scale)
	h := int(float64(a.cfg.Screen.Height) * a.cfg.Window.Scale)
	ebiten.SetWindowSize(w, h)
}

// Draw draws the last presented frame and, once the game has ended, the
// outcome banner.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.renderer.Draw(screen)

	if a.touchOverlay {
		a.drawTouchZones(screen)
	}
	if !a.running {
		a.drawBanner(screen, bannerText(a.scene.Outcome()))
	}
}

func bannerText(o game.Outcome) string {
	switch o {
	case game.OutcomeGameOver:
		return "GAME OVER"
	case game.OutcomeStalemate:
		return "NO INVADERS LEFT"
	}
	return ""
}

func (a *App) drawBanner(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.GeoM.Scale(bannerScale, bannerScale)
	op.GeoM.Translate(float64(a.cfg.Screen.Width)/2, float64(a.cfg.Screen.Height)/2)
	op.ColorScale.ScaleWithColor(color.White)
	text.Draw(screen, msg, a.bannerFace, op)
}

func (a *App) drawTouchZones(screen *ebiten.Image) {
	w := float32(a.cfg.Screen.Width)
	h := float32(a.cfg.Screen.Height)
	zone := color.RGBA{R: 60, G: 60, B: 60, A: 255}
	vector.StrokeLine(screen, w/3, 0, w/3, h, 1, zone, false)
	vector.StrokeLine(screen, w-w/3, 0, w-w/3, h, 1, zone, false)
}

// DrawFinalScreen implements ebiten.FinalScreenDrawer: black letterbox and
// nearest filtering so the sprites stay sharp when scaled.
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	screen.Fill(color.Black)
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterNearest
	screen.DrawImage(offscreen, op)
}

// Layout returns the logical playfield size; ebiten scales it to the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.cfg.Screen.Width, a.cfg.Screen.Height
}
