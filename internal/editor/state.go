// ABOUTME: Editor view state: viewport dimensions and the cursor clamped inside them
// ABOUTME: Built once the window size is known; mutated only through MoveCursor

package editor

import (
	"errors"
	"fmt"

	"github.com/mauromedda/kilo-go/pkg/tui"
)

// ErrInvalidViewport is returned by NewState for non-positive dimensions.
var ErrInvalidViewport = errors.New("invalid viewport")

// State is the editor's view of the screen. The cursor always satisfies
// 0 <= CursorX < Cols and 0 <= CursorY < Rows.
type State struct {
	CursorX int
	CursorY int
	Rows    int
	Cols    int
}

// NewState returns a State for a rows x cols viewport with the cursor at
// the top-left corner.
func NewState(rows, cols int) (*State, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidViewport, rows, cols)
	}
	return &State{Rows: rows, Cols: cols}, nil
}

// Frame returns the renderer's view of s.
func (s *State) Frame() tui.Frame {
	return tui.Frame{
		Rows:      s.Rows,
		Cols:      s.Cols,
		CursorRow: s.CursorY,
		CursorCol: s.CursorX,
	}
}
