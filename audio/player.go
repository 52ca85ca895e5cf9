// Package audio plays short synthesized cues through the system speaker
package audio

import (
	"sync"
	"sync/atomic"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/parameter"
)

var logger = golog.Child("[audio]")

// Player owns the speaker mixer and the global mute switch
// A player that failed to start stays silent; every method is safe to call
type Player struct {
	mu      sync.Mutex
	enabled bool
	started bool

	rate   beep.SampleRate
	mixer  *beep.Mixer
	volume *effects.Volume

	muted  atomic.Bool
	played atomic.Uint64
}

// NewPlayer creates a player; a disabled player never touches the speaker
func NewPlayer(enabled bool) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		enabled: enabled,
		rate:    beep.SampleRate(parameter.AudioSampleRate),
		mixer:   mixer,
		volume:  &effects.Volume{Streamer: mixer, Base: 2},
	}
}

// Start initializes the speaker
// Failure is returned for logging but leaves a usable silent player
func (p *Player) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || p.started {
		return nil
	}

	if err := speaker.Init(p.rate, p.rate.N(parameter.AudioBufferDuration)); err != nil {
		logger.Warnf("speaker unavailable, continuing without sound: %v", err)
		return err
	}

	p.volume.Silent = p.muted.Load()
	speaker.Play(p.volume)
	p.started = true
	logger.Infof("speaker started at %d Hz", p.rate)
	return nil
}

// Stop clears pending cues and releases the speaker
func (p *Player) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.started {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.mixer.Clear()
	p.started = false
}

// ToggleMute flips the global mute switch and returns the new state
// Works whether or not the speaker is running
func (p *Player) ToggleMute() bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	muted := !p.muted.Load()
	p.muted.Store(muted)

	if p.started {
		speaker.Lock()
		p.volume.Silent = muted
		speaker.Unlock()
	}
	return muted
}

// Muted reports the global mute switch
func (p *Player) Muted() bool {
	return p.muted.Load()
}

// Played returns the number of cues handed to the mixer
func (p *Player) Played() uint64 {
	return p.played.Load()
}

// PlayClick acknowledges a routed button touch
func (p *Player) PlayClick() {
	p.play(CueClick, 1)
}

// PlayLock marks a piece settling on the board
func (p *Player) PlayLock() {
	p.play(CueLock, 1)
}

// PlayClear plays one rising note per cleared line
func (p *Player) PlayClear(lines int) {
	p.play(CueClear, lines)
}

func (p *Player) play(c Cue, repeat int) {
	if p.muted.Load() {
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.started {
		return
	}

	s := cueStreamer(c, p.rate, repeat)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.played.Add(1)
}
