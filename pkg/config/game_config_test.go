package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default().Validate(): %v", err)
	}

	if cfg.Screen.Width != 1280 || cfg.Screen.Height != 720 {
		t.Errorf("Screen: got %dx%d, want 1280x720", cfg.Screen.Width, cfg.Screen.Height)
	}
	if cfg.Swarm.Rows*cfg.Swarm.Columns != 55 {
		t.Errorf("swarm size: got %d, want 55", cfg.Swarm.Rows*cfg.Swarm.Columns)
	}
	if cfg.Timing.FastTick != 50*time.Millisecond {
		t.Errorf("FastTick: got %v, want 50ms", cfg.Timing.FastTick)
	}
	if cfg.Timing.SlowTick != 500*time.Millisecond {
		t.Errorf("SlowTick: got %v, want 500ms", cfg.Timing.SlowTick)
	}
	if !cfg.Player.ClampToScreen {
		t.Error("ClampToScreen: got false, want true")
	}
}

func TestDefaultReturnsIndependentCopies(t *testing.T) {
	a := Default()
	a.Swarm.RowTiers[0] = 2

	if b := Default(); b.Swarm.RowTiers[0] != 0 {
		t.Error("Default() should not share RowTiers between calls")
	}
}

func TestParseGameConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *GameConfig)
	}{
		{
			name: "partial override keeps defaults",
			yamlContent: `
screen:
  width: 2048
  height: 1024
timing:
  fastTick: 40ms
  slowTick: 1s
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Screen.Width != 2048 || cfg.Screen.Height != 1024 {
					t.Errorf("Screen: got %dx%d, want 2048x1024", cfg.Screen.Width, cfg.Screen.Height)
				}
				if cfg.Timing.FastTick != 40*time.Millisecond {
					t.Errorf("FastTick: got %v, want 40ms", cfg.Timing.FastTick)
				}
				if cfg.Timing.SlowTick != time.Second {
					t.Errorf("SlowTick: got %v, want 1s", cfg.Timing.SlowTick)
				}
				if cfg.Swarm.Step != DefaultSwarmStep {
					t.Errorf("Step: got %d, want default %d", cfg.Swarm.Step, DefaultSwarmStep)
				}
			},
		},
		{
			name: "row tiers replaced",
			yamlContent: `
swarm:
  rowTiers: [2, 2, 1, 0, 0]
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if got := cfg.TierForRow(0); got != 2 {
					t.Errorf("TierForRow(0): got %d, want 2", got)
				}
				if got := cfg.TierForRow(4); got != 0 {
					t.Errorf("TierForRow(4): got %d, want 0", got)
				}
			},
		},
		{
			name: "unclamped player",
			yamlContent: `
player:
  clampToScreen: false
`,
			validate: func(t *testing.T, cfg *GameConfig) {
				if cfg.Player.ClampToScreen {
					t.Error("ClampToScreen: got true, want false")
				}
			},
		},
		{
			name:        "malformed yaml",
			yamlContent: "screen: [",
			wantErr:     true,
			errContains: "failed to parse",
		},
		{
			name: "grid does not fit",
			yamlContent: `
swarm:
  columns: 40
`,
			wantErr:     true,
			errContains: "does not fit",
		},
		{
			name: "tier count mismatch",
			yamlContent: `
swarm:
  rowTiers: [0, 1]
`,
			wantErr:     true,
			errContains: "rowTiers",
		},
		{
			name: "zero slow tick",
			yamlContent: `
timing:
  slowTick: 0s
`,
			wantErr:     true,
			errContains: "tick intervals",
		},
		{
			name: "negative step",
			yamlContent: `
swarm:
  step: -5
`,
			wantErr:     true,
			errContains: "step",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseGameConfig([]byte(tt.yamlContent))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("error %q does not contain %q", err.Error(), tt.errContains)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadGameConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "game.yaml")
	if err := os.WriteFile(path, []byte("swarm:\n  step: 12\n"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadGameConfig(path)
	if err != nil {
		t.Fatalf("LoadGameConfig: %v", err)
	}
	if cfg.Swarm.Step != 12 {
		t.Errorf("Step: got %d, want 12", cfg.Swarm.Step)
	}

	if _, err := LoadGameConfig(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestTierForRowOutOfRange(t *testing.T) {
	cfg := Default()
	if got := cfg.TierForRow(-1); got != 0 {
		t.Errorf("TierForRow(-1): got %d, want 0", got)
	}
	if got := cfg.TierForRow(99); got != 0 {
		t.Errorf("TierForRow(99): got %d, want 0", got)
	}
}
