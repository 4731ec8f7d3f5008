// ABOUTME: Main loop: render a frame, decode one key, dispatch; Ctrl-Q clears the screen and quits
// ABOUTME: Any collaborator error ends the loop after a best-effort screen clear

package editor

import (
	"errors"
	"fmt"
	"os"

	"github.com/mauromedda/kilo-go/internal/log"
	"github.com/mauromedda/kilo-go/pkg/tui"
	"github.com/mauromedda/kilo-go/pkg/tui/key"
	"github.com/mauromedda/kilo-go/pkg/tui/terminal"
)

// ErrTerminated is returned by Run when a termination signal arrives.
var ErrTerminated = errors.New("terminated by signal")

// Options configures an Editor.
type Options struct {
	// Banner is the welcome text shown one third down the screen.
	Banner string
	// Glyph marks empty rows; empty means tui.DefaultGlyph.
	Glyph string
	// Signals, if set, is polled while waiting for input. Any value
	// received makes Run return ErrTerminated.
	Signals <-chan os.Signal
}

// Editor owns the view state and drives the render/read/dispatch loop.
// The terminal must already be in raw mode.
type Editor struct {
	state    *State
	renderer *tui.Renderer
	decoder  *key.Decoder
	signals  <-chan os.Signal
}

// New probes the window size of t and returns an Editor for it.
func New(t terminal.Terminal, opts Options) (*Editor, error) {
	renderer := tui.New(t, tui.Options{Banner: opts.Banner, Glyph: opts.Glyph})

	rows, cols, err := terminal.WindowSize(t)
	if err != nil {
		_ = renderer.ClearScreen()
		return nil, err
	}
	state, err := NewState(rows, cols)
	if err != nil {
		_ = renderer.ClearScreen()
		return nil, err
	}
	log.Debug("viewport %dx%d", cols, rows)

	e := &Editor{
		state:    state,
		renderer: renderer,
		decoder:  key.NewDecoder(t),
		signals:  opts.Signals,
	}
	e.decoder.Idle = e.checkSignals
	return e, nil
}

// State returns the editor's view state.
func (e *Editor) State() *State {
	return e.state
}

// Run loops until the quit key is read (returning nil) or a collaborator
// fails (returning its error).
func (e *Editor) Run() error {
	for {
		if err := e.renderer.RenderFrame(e.state.Frame()); err != nil {
			return e.fail(err)
		}

		k, err := e.decoder.ReadKey()
		if err != nil {
			return e.fail(err)
		}

		if e.processKey(k) {
			return e.renderer.ClearScreen()
		}
	}
}

// processKey dispatches k and reports whether the loop should stop.
func (e *Editor) processKey(k key.Key) (quit bool) {
	switch {
	case k.IsChar(key.QuitByte):
		log.Debug("quit requested")
		return true
	case isMovement(k):
		e.state.MoveCursor(k)
	default:
		log.Debug("ignoring key %s", k)
	}
	return false
}

// fail clears the screen so the diagnostic is readable, then passes err on.
func (e *Editor) fail(err error) error {
	if cerr := e.renderer.ClearScreen(); cerr != nil {
		log.Debug("clearing screen after failure: %v", cerr)
	}
	return err
}

// checkSignals is the decoder's idle hook.
func (e *Editor) checkSignals() error {
	select {
	case sig := <-e.signals:
		return fmt.Errorf("%w: %v", ErrTerminated, sig)
	default:
		return nil
	}
}
