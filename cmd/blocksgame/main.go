package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/asset"
	"github.com/lixenwraith/blocksgame/audio"
	"github.com/lixenwraith/blocksgame/blocks"
	"github.com/lixenwraith/blocksgame/config"
	"github.com/lixenwraith/blocksgame/core"
	"github.com/lixenwraith/blocksgame/engine"
	"github.com/lixenwraith/blocksgame/remote"
	"github.com/lixenwraith/blocksgame/render"
	"github.com/lixenwraith/blocksgame/terminal"
)

var logger = golog.Child("[main]")

var (
	configFlag = flag.String("config", config.DefaultPath, "Configuration file")
	debugFlag  = flag.Bool("debug", false, "Write debug logs to logs/blocksgame.log")
	seedFlag   = flag.Int64("seed", 0, "Piece sequence seed (0 uses the configured or time based seed)")
	remoteFlag = flag.Bool("remote", false, "Serve the browser touch pad")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
	writeFlag  = flag.Bool("write-config", false, "Write the effective configuration to the config path and exit")
)

func main() {
	// Panic Recovery: Ensure terminal is reset even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	if *seedFlag != 0 {
		cfg.Game.Seed = *seedFlag
	}
	if *remoteFlag {
		cfg.Remote.Enabled = true
	}
	if *muteFlag {
		cfg.Audio.Muted = true
	}

	if *writeFlag {
		path, err := writeConfig(cfg, *configFlag)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to write configuration: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Configuration written to %s\n", path)
		return
	}

	if logFile := setupLogging(*debugFlag, cfg.Log); logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintf(os.Stderr, "blocksgame: %v\n", err)
		os.Exit(1)
	}
}

// writeConfig saves cfg to path, falling back to the default file name
func writeConfig(cfg config.Config, path string) (string, error) {
	if path == "" {
		path = config.DefaultPath
	}
	return path, cfg.Write(path)
}

// run wires every component and blocks until the loop stops
// Failures before the loop starts are returned without touching the terminal state
func run(cfg config.Config) error {
	assets, err := asset.Embedded()
	if err != nil {
		return fmt.Errorf("load assets: %w", err)
	}

	seed := cfg.Game.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger.Infof("seed %d", seed)

	game := blocks.New(
		blocks.Config{Columns: cfg.Game.Columns, Rows: cfg.Game.Rows},
		rand.New(rand.NewSource(seed)),
		assets.Sprites(blocks.Palette),
	)

	player := audio.NewPlayer(cfg.Audio.Enabled)
	if cfg.Audio.Muted {
		player.ToggleMute()
	}
	// Sound is optional; Start logs its own failure
	_ = player.Start()
	defer player.Stop()
	game.SetEffects(player)

	loop, err := engine.NewLoop(engine.LoopConfig{
		Width:           cfg.Canvas.Width,
		Height:          cfg.Canvas.Height,
		TickPeriod:      cfg.Loop.TickPeriod.Duration,
		PauseFrameDelay: cfg.Loop.PauseFrameDelay.Duration,
		MaxDelta:        cfg.Loop.MaxDelta.Duration,
		QueueSize:       cfg.Loop.QueueSize,
	}, engine.LoopDeps{
		Gameplay:   game,
		Sound:      player,
		Background: assets.Background,
	})
	if err != nil {
		return fmt.Errorf("create loop: %w", err)
	}

	var padListener net.Listener
	if cfg.Remote.Enabled {
		padListener, err = net.Listen("tcp", cfg.Remote.Listen)
		if err != nil {
			return fmt.Errorf("remote pad: %w", err)
		}
	}

	screen, err := terminal.Open()
	if err != nil {
		if padListener != nil {
			padListener.Close()
		}
		return fmt.Errorf("terminal: %w", err)
	}
	core.SetCrashTerminal(screen)
	defer func() {
		core.SetCrashTerminal(nil)
		screen.Fini()
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	width, height := cfg.Canvas.Width, cfg.Canvas.Height
	core.Go(func() {
		terminal.Poll(ctx, screen, width, height, terminal.Handlers{
			Pointer: loop.HandlePointer,
			Click:   player.PlayClick,
			Blur:    func() { logger.Debugf("terminal focus lost at frame %d", loop.Frame()) },
			Quit:    cancel,
		})
	})

	if padListener != nil {
		pad := remote.NewServer(loop, width, height)
		pad.OnClick(player.PlayClick)
		core.Go(func() {
			if err := pad.Serve(ctx, padListener); err != nil {
				logger.Errorf("remote pad stopped: %v", err)
			}
		})
	}

	canvas := render.NewCanvas(width, height, screen)
	err = loop.Run(ctx, canvas)
	logger.Infof("exit after %d frames, score %d, lines %d, %d cues", loop.Frame(), game.Score(), game.Lines(), player.Played())
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
