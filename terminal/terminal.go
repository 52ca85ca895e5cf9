// Package terminal hosts the game on a tcell screen and turns mouse input into pointer samples
package terminal

import (
	"context"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kataras/golog"

	"github.com/lixenwraith/blocksgame/input"
)

var logger = golog.Child("[terminal]")

// Open creates and initializes a screen with button and drag reporting
func Open() (tcell.Screen, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	Configure(screen)
	return screen, nil
}

// Configure enables the event classes Poll consumes
func Configure(screen tcell.Screen) {
	screen.EnableMouse(tcell.MouseButtonEvents | tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
}

// Handlers receive translated terminal events; nil fields are skipped
type Handlers struct {
	// Pointer receives every translated sample; the result is the click acknowledgment
	Pointer func(input.Sample) bool
	// Click fires when Pointer acknowledged a sample
	Click func()
	// Blur fires when the terminal loses focus, after the mouse press is released
	Blur func()
	// Quit fires on q, Esc or Ctrl+C
	Quit func()
}

// Poll translates screen events until ctx is done or the screen is finalized
// The canvas size maps cells onto logical coordinates
func Poll(ctx context.Context, screen tcell.Screen, width, height float64, h Handlers) {
	tr := NewPointerTranslator(width, height)

	for {
		if ctx.Err() != nil {
			return
		}
		ev := screen.PollEvent()
		if ev == nil {
			// Screen finalized
			return
		}

		switch ev := ev.(type) {
		case *tcell.EventKey:
			if isQuit(ev) {
				logger.Infof("quit requested")
				if h.Quit != nil {
					h.Quit()
				}
				return
			}

		case *tcell.EventMouse:
			cols, rows := screen.Size()
			s, ok := tr.Translate(ev, cols, rows)
			if !ok || h.Pointer == nil {
				continue
			}
			if h.Pointer(s) && s.Kind == input.SampleDown && h.Click != nil {
				h.Click()
			}

		case *tcell.EventFocus:
			if !ev.Focused {
				if s, ok := tr.Release(); ok && h.Pointer != nil {
					logger.Debugf("focus lost, releasing mouse pointer")
					h.Pointer(s)
				}
				if h.Blur != nil {
					h.Blur()
				}
			}

		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
