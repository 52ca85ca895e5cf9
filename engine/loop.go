package engine

import (
	"context"
	"errors"
	"image"
	"sync/atomic"
	"time"

	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/input"
	"github.com/lixenwraith/blocksgame/parameter"
	"github.com/lixenwraith/blocksgame/render"
)

var logger = golog.Child("[loop]")

var (
	ErrMissingBackground = errors.New("engine: background image required")
	ErrMissingGameplay   = errors.New("engine: gameplay engine required")
)

// State is the loop's dispatch mode
type State uint8

const (
	StateRunning State = iota
	StatePaused
)

// String returns human-readable state name
func (s State) String() string {
	if s == StatePaused {
		return "Paused"
	}
	return "Running"
}

// LoopConfig holds timing and canvas settings
type LoopConfig struct {
	Width, Height   float64
	TickPeriod      time.Duration
	PauseFrameDelay time.Duration
	MaxDelta        time.Duration
	QueueSize       int
	Bindings        []Binding // Nil selects DefaultBindings
}

// DefaultLoopConfig returns the reference timing and canvas
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		Width:           parameter.CanvasWidth,
		Height:          parameter.CanvasHeight,
		TickPeriod:      parameter.TickPeriod,
		PauseFrameDelay: parameter.PauseFrameDelay,
		MaxDelta:        parameter.MaxFrameDelta,
		QueueSize:       parameter.EventQueueSize,
	}
}

// LoopDeps are the external collaborators
type LoopDeps struct {
	Gameplay   Gameplay
	Sound      Sound        // Optional
	Background image.Image  // Required visual asset
	Time       TimeProvider // Optional, monotonic by default
}

// Loop owns timing, input dispatch and frame presentation
//
// Threading:
//   - Tick, Render and Run execute on one goroutine, strictly sequentially
//   - HandlePointer may be called concurrently from input producers
//   - State is readable from any goroutine
type Loop struct {
	cfg LoopConfig

	clock  *Clock
	router *input.Router
	table  CommandTable
	pacer  *Pacer

	game       Gameplay
	sound      Sound
	background image.Image

	// Movement commands forwarded as active and not yet released
	held [CommandCount]bool

	frame atomic.Uint64
}

// NewLoop registers the button layout and wires collaborators
// Fails when required visual assets or the gameplay engine are missing
func NewLoop(cfg LoopConfig, deps LoopDeps) (*Loop, error) {
	if deps.Background == nil {
		return nil, ErrMissingBackground
	}
	if deps.Gameplay == nil {
		return nil, ErrMissingGameplay
	}
	if deps.Sound == nil {
		deps.Sound = &nopSound{}
	}
	if deps.Time == nil {
		deps.Time = NewMonotonicTimeProvider()
	}

	l := &Loop{
		cfg:        cfg,
		clock:      NewClock(deps.Time, cfg.MaxDelta),
		router:     input.NewRouter(cfg.QueueSize),
		pacer:      NewPacer(cfg.TickPeriod, deps.Time),
		game:       deps.Gameplay,
		sound:      deps.Sound,
		background: deps.Background,
	}

	bindings := cfg.Bindings
	if bindings == nil {
		bindings = DefaultBindings()
	}
	l.table.Bind(l.router, cfg.Width, cfg.Height, bindings)

	return l, nil
}

// Router exposes the input router for hosts that manage pointer lifecycle
func (l *Loop) Router() *input.Router {
	return l.router
}

// Clock exposes the frame clock
func (l *Loop) Clock() *Clock {
	return l.clock
}

// Commands exposes the identifier to command table
func (l *Loop) Commands() *CommandTable {
	return &l.table
}

// State returns the current dispatch mode
func (l *Loop) State() State {
	if l.clock.Paused() {
		return StatePaused
	}
	return StateRunning
}

// Frame returns the number of completed ticks
func (l *Loop) Frame() uint64 {
	return l.frame.Load()
}

// HandlePointer is the raw input boundary
// Returns true when the host should also fire its semantic click action
func (l *Loop) HandlePointer(s input.Sample) bool {
	return l.router.SubmitSample(s)
}

// Tick runs one loop iteration: delta, drain and route, advance, commit
func (l *Loop) Tick() {
	delta := l.clock.Delta()

	l.drain()

	if l.State() == StateRunning {
		l.game.Update(delta)
	}

	stats := l.router.CommitFrame()
	if stats.Spilled > 0 {
		logger.Debugf("frame %d: %d events spilled to backlog, %d pending", l.frame.Load(), stats.Spilled, l.router.Pending())
	}

	l.frame.Add(1)
}

// drain consumes every queued event
// Routing rules are fixed per drain by the state at drain start, with a pause
// press switching the remainder to paused rules; at most one pause transition
// is applied per drain
func (l *Loop) drain() {
	paused := l.clock.Paused()
	toggled := false

	for {
		ev, ok := l.router.DrainNextEvent()
		if !ok {
			return
		}
		cmd := l.table.Lookup(ev.Button)

		if paused {
			if ev.Transition != input.Press {
				continue
			}
			switch cmd {
			case CommandPause:
				if !toggled {
					toggled = true
					l.resume()
				}
			case CommandToggleMute:
				l.toggleMute()
			}
			continue
		}

		if ev.Transition == input.Press {
			switch cmd {
			case CommandMoveLeft, CommandMoveRight, CommandFastDrop:
				l.setHeld(cmd, true)
			case CommandRotate:
				l.game.Rotate()
			case CommandPause:
				if !toggled {
					toggled = true
					paused = true
					l.pause()
				}
			case CommandToggleScore:
				l.game.ToggleScore()
			case CommandToggleMute:
				l.toggleMute()
			}
			continue
		}

		if cmd.Held() {
			l.setHeld(cmd, false)
		}
	}
}

// setHeld forwards a movement edge once per transition
func (l *Loop) setHeld(cmd Command, active bool) {
	if l.held[cmd] == active {
		return
	}
	l.held[cmd] = active

	switch cmd {
	case CommandMoveLeft:
		l.game.MoveLeft(active)
	case CommandMoveRight:
		l.game.MoveRight(active)
	case CommandFastDrop:
		l.game.FastDrop(active)
	}
}

// pause enters PAUSED, releasing latched movement before the boundary
func (l *Loop) pause() {
	for cmd := Command(0); cmd < CommandCount; cmd++ {
		if l.held[cmd] {
			l.setHeld(cmd, false)
		}
	}
	l.clock.Pause()
	logger.Infof("paused at frame %d", l.frame.Load())
}

func (l *Loop) resume() {
	l.clock.Resume()
	logger.Infof("resumed at frame %d after %v total pause", l.frame.Load(), l.clock.TotalPaused())
}

func (l *Loop) toggleMute() {
	muted := l.sound.ToggleMute()
	logger.Debugf("mute toggled: %v", muted)
}

// Run drives tick and render at the configured cadence until ctx is done
func (l *Loop) Run(ctx context.Context, target render.Target) error {
	defer l.pacer.Close()

	logger.Infof("loop started: canvas %.0fx%.0f, tick %v", l.cfg.Width, l.cfg.Height, l.cfg.TickPeriod)
	for {
		select {
		case <-ctx.Done():
			logger.Infof("loop stopped after %d frames", l.frame.Load())
			return ctx.Err()
		default:
		}

		l.pacer.Begin()
		l.Tick()
		l.Render(ctx, target)
		target.Show()
		l.pacer.Wait(ctx)
	}
}
