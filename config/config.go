// Package config loads the game's TOML configuration
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/lixenwraith/blocksgame/parameter"
)

// DefaultPath is the configuration file read when no path is given
const DefaultPath = "blocksgame.toml"

// ErrInvalid wraps every validation failure
var ErrInvalid = errors.New("invalid config")

// Duration decodes TOML strings such as "33ms"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

type Loop struct {
	TickPeriod      Duration `toml:"tick_period"`
	PauseFrameDelay Duration `toml:"pause_frame_delay"`
	MaxDelta        Duration `toml:"max_delta"`
	QueueSize       int      `toml:"queue_size"`
}

type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

type Game struct {
	Columns int   `toml:"columns"`
	Rows    int   `toml:"rows"`
	Seed    int64 `toml:"seed"` // Zero selects a time based seed
}

type Audio struct {
	Enabled bool `toml:"enabled"`
	Muted   bool `toml:"muted"`
}

type Remote struct {
	Enabled bool   `toml:"enabled"`
	Listen  string `toml:"listen"`
}

type Log struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

// Config is the full file layout
type Config struct {
	Loop   Loop   `toml:"loop"`
	Canvas Canvas `toml:"canvas"`
	Game   Game   `toml:"game"`
	Audio  Audio  `toml:"audio"`
	Remote Remote `toml:"remote"`
	Log    Log    `toml:"log"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Loop: Loop{
			TickPeriod:      Duration{parameter.TickPeriod},
			PauseFrameDelay: Duration{parameter.PauseFrameDelay},
			MaxDelta:        Duration{parameter.MaxFrameDelta},
			QueueSize:       parameter.EventQueueSize,
		},
		Canvas: Canvas{
			Width:  parameter.CanvasWidth,
			Height: parameter.CanvasHeight,
		},
		Game: Game{
			Columns: parameter.BoardColumns,
			Rows:    parameter.BoardRows,
		},
		Audio: Audio{Enabled: true},
		Remote: Remote{
			Listen: parameter.RemoteListen,
		},
		Log: Log{Level: "info"},
	}
}

// Load reads path over the defaults
// A missing file is not an error; the defaults are returned
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, fmt.Errorf("config %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the loop cannot run with
func (c Config) Validate() error {
	switch {
	case c.Loop.TickPeriod.Duration <= 0:
		return fmt.Errorf("loop.tick_period must be positive: %w", ErrInvalid)
	case c.Loop.PauseFrameDelay.Duration < 0:
		return fmt.Errorf("loop.pause_frame_delay must not be negative: %w", ErrInvalid)
	case c.Loop.MaxDelta.Duration < c.Loop.TickPeriod.Duration:
		return fmt.Errorf("loop.max_delta must be at least tick_period: %w", ErrInvalid)
	case c.Loop.QueueSize <= 0 || c.Loop.QueueSize&(c.Loop.QueueSize-1) != 0:
		return fmt.Errorf("loop.queue_size %d must be a power of two: %w", c.Loop.QueueSize, ErrInvalid)
	case c.Canvas.Width <= 0 || c.Canvas.Height <= 0:
		return fmt.Errorf("canvas size must be positive: %w", ErrInvalid)
	case c.Game.Columns < 4 || c.Game.Rows < 4:
		return fmt.Errorf("game board must be at least 4x4: %w", ErrInvalid)
	case c.Remote.Enabled && c.Remote.Listen == "":
		return fmt.Errorf("remote.listen required when remote is enabled: %w", ErrInvalid)
	}

	switch c.Log.Level {
	case "debug", "info", "warn", "error", "disable":
	default:
		return fmt.Errorf("log.level %q: %w", c.Log.Level, ErrInvalid)
	}
	return nil
}

// Write encodes c as TOML to path
func (c Config) Write(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
