package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lixenwraith/blocksgame/parameter"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "blocksgame.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Expected default config to validate, got %v", err)
	}
	if cfg.Loop.TickPeriod.Duration != parameter.TickPeriod {
		t.Errorf("Expected tick period %v, got %v", parameter.TickPeriod, cfg.Loop.TickPeriod.Duration)
	}
	if cfg.Loop.PauseFrameDelay.Duration != 100*time.Millisecond {
		t.Errorf("Expected pause frame delay 100ms, got %v", cfg.Loop.PauseFrameDelay.Duration)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Expected no error for missing file, got %v", err)
	}
	if cfg != Default() {
		t.Errorf("Expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
[loop]
tick_period = "16ms"
queue_size = 64

[game]
seed = 42

[remote]
enabled = true
listen = "127.0.0.1:9000"

[log]
level = "debug"
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Loop.TickPeriod.Duration != 16*time.Millisecond {
		t.Errorf("Expected 16ms tick, got %v", cfg.Loop.TickPeriod.Duration)
	}
	if cfg.Loop.QueueSize != 64 {
		t.Errorf("Expected queue size 64, got %d", cfg.Loop.QueueSize)
	}
	if cfg.Game.Seed != 42 {
		t.Errorf("Expected seed 42, got %d", cfg.Game.Seed)
	}
	if !cfg.Remote.Enabled || cfg.Remote.Listen != "127.0.0.1:9000" {
		t.Errorf("Expected remote override, got %+v", cfg.Remote)
	}
	// Untouched sections keep defaults
	if cfg.Canvas.Width != parameter.CanvasWidth || !cfg.Audio.Enabled {
		t.Errorf("Expected untouched sections to keep defaults, got %+v %+v", cfg.Canvas, cfg.Audio)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"zero tick":      "[loop]\ntick_period = \"0s\"\n",
		"odd queue":      "[loop]\nqueue_size = 100\n",
		"small delta":    "[loop]\nmax_delta = \"1ms\"\n",
		"bad level":      "[log]\nlevel = \"loud\"\n",
		"unknown key":    "[loop]\nspeed = 3\n",
		"empty listen":   "[remote]\nenabled = true\nlisten = \"\"\n",
		"negative width": "[canvas]\nwidth = -1.0\n",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeFile(t, content))
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "[loop\n"))
	if err == nil {
		t.Fatal("Expected parse error")
	}
	if errors.Is(err, ErrInvalid) {
		t.Error("Parse errors should not be reported as validation failures")
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.toml")
	cfg := Default()
	cfg.Game.Seed = 7
	cfg.Loop.PauseFrameDelay = Duration{50 * time.Millisecond}

	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got != cfg {
		t.Errorf("Expected %+v, got %+v", cfg, got)
	}
}
