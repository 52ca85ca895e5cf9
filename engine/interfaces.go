package engine

import (
	"time"

	"github.com/lixenwraith/blocksgame/render"
)

// Gameplay is the rules engine driven by the loop
// The loop forwards commands and delta time; it never inspects gameplay state
type Gameplay interface {
	MoveLeft(active bool)
	MoveRight(active bool)
	FastDrop(active bool)
	Rotate()
	ToggleScore()
	Update(delta time.Duration)
	Draw(s render.Surface)
}

// Sound is the audio control exercised by the loop
type Sound interface {
	// ToggleMute flips global mute and returns the new muted state
	ToggleMute() bool
}

// nopSound is used when no audio backend is wired
type nopSound struct{ muted bool }

func (n *nopSound) ToggleMute() bool {
	n.muted = !n.muted
	return n.muted
}
