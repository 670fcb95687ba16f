package app

import (
	"bytes"
	"log"
	"path/filepath"
	"strings"
	"testing"

	"github.com/decker502/invaders/pkg/game"
)

func TestResolveSeed(t *testing.T) {
	if got := ResolveSeed(5, 9); got != 5 {
		t.Errorf("flag seed should win: got %d", got)
	}
	if got := ResolveSeed(0, 9); got != 9 {
		t.Errorf("config seed should be used: got %d", got)
	}
	if got := ResolveSeed(0, 0); got == 0 {
		t.Error("a time based seed should not be 0")
	}
}

func TestBannerText(t *testing.T) {
	tests := []struct {
		outcome game.Outcome
		want    string
	}{
		{game.OutcomeRunning, ""},
		{game.OutcomeGameOver, "GAME OVER"},
		{game.OutcomeStalemate, "NO INVADERS LEFT"},
	}
	for _, tt := range tests {
		if got := bannerText(tt.outcome); got != tt.want {
			t.Errorf("bannerText(%s): got %q, want %q", tt.outcome, got, tt.want)
		}
	}
}

func TestLoadGameConfigFromPath(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", "")

	cfg, err := LoadGameConfig(Config{ConfigPath: "../../data/game.yaml"})
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if cfg.Swarm.Rows != 5 || cfg.Swarm.Columns != 11 {
		t.Errorf("grid: got %dx%d, want 5x11", cfg.Swarm.Rows, cfg.Swarm.Columns)
	}
}

func TestNewAppFailureKeepsLogOutput(t *testing.T) {
	var buf bytes.Buffer
	out, flags := log.Writer(), log.Flags()
	log.SetOutput(&buf)
	t.Cleanup(func() {
		log.SetOutput(out)
		log.SetFlags(flags)
	})

	_, err := NewApp(Config{ConfigPath: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatal("NewApp should fail for a missing config file")
	}

	log.Printf("failed to start game: %v", err)
	if !strings.Contains(buf.String(), "failed to start game") {
		t.Errorf("startup error was not reported, log output: %q", buf.String())
	}
}
