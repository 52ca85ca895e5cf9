package engine

import (
	"github.com/lixenwraith/blocksgame/input"
	"github.com/lixenwraith/blocksgame/parameter"
)

// Command is the loop-level meaning bound to a button region
type Command uint8

const (
	CommandNone Command = iota
	CommandMoveLeft
	CommandMoveRight
	CommandFastDrop
	CommandRotate
	CommandPause
	CommandToggleScore
	CommandToggleMute
	CommandCount
)

var commandNames = [CommandCount]string{
	CommandNone:        "None",
	CommandMoveLeft:    "MoveLeft",
	CommandMoveRight:   "MoveRight",
	CommandFastDrop:    "FastDrop",
	CommandRotate:      "Rotate",
	CommandPause:       "Pause",
	CommandToggleScore: "ToggleScore",
	CommandToggleMute:  "ToggleMute",
}

// String returns human-readable command name
func (c Command) String() string {
	if c < CommandCount {
		return commandNames[c]
	}
	return "Unknown"
}

// Held reports whether the command has release behavior
// Rotate, pause and toggles are momentary
func (c Command) Held() bool {
	switch c {
	case CommandMoveLeft, CommandMoveRight, CommandFastDrop:
		return true
	default:
		return false
	}
}

// Binding places a command on the canvas as a fraction of its size
type Binding struct {
	Command Command
	Area    parameter.FracRect
}

// DefaultBindings is the touch layout in registration order
// Order matters for overlap precedence: earlier bindings win
func DefaultBindings() []Binding {
	return []Binding{
		{CommandRotate, parameter.LayoutRotate},
		{CommandMoveLeft, parameter.LayoutLeft},
		{CommandMoveRight, parameter.LayoutRight},
		{CommandFastDrop, parameter.LayoutDown},
		{CommandPause, parameter.LayoutPause},
		{CommandToggleMute, parameter.LayoutSound},
		{CommandToggleScore, parameter.LayoutScore},
	}
}

// CommandTable resolves button identifiers to commands by direct index
type CommandTable struct {
	commands []Command
}

// Bind registers each binding on the router, scaled to the canvas, and records
// the resulting identifier
func (t *CommandTable) Bind(router *input.Router, width, height float64, bindings []Binding) {
	for _, b := range bindings {
		id := router.RegisterButton(b.Area.X*width, b.Area.Y*height, b.Area.W*width, b.Area.H*height)
		for int(id) >= len(t.commands) {
			t.commands = append(t.commands, CommandNone)
		}
		t.commands[id] = b.Command
	}
}

// Lookup returns the command for id, CommandNone for unknown identifiers
func (t *CommandTable) Lookup(id input.ButtonID) Command {
	if id < 0 || int(id) >= len(t.commands) {
		return CommandNone
	}
	return t.commands[id]
}
