// ABOUTME: Cursor movement for arrow and page keys, clamped silently at viewport edges
// ABOUTME: PageUp/PageDown repeat a single-row step once per viewport row

package editor

import "github.com/mauromedda/kilo-go/pkg/tui/key"

// MoveCursor applies a movement key. Keys that do not move the cursor
// are ignored. There is no wraparound.
func (s *State) MoveCursor(k key.Key) {
	switch k.Type {
	case key.KeyPageUp:
		for range s.Rows {
			s.step(key.KeyUp)
		}
	case key.KeyPageDown:
		for range s.Rows {
			s.step(key.KeyDown)
		}
	default:
		s.step(k.Type)
	}
}

// step moves the cursor one cell in the direction of t, if there is room.
func (s *State) step(t key.KeyType) {
	switch t {
	case key.KeyLeft:
		if s.CursorX > 0 {
			s.CursorX--
		}
	case key.KeyRight:
		if s.CursorX < s.Cols-1 {
			s.CursorX++
		}
	case key.KeyUp:
		if s.CursorY > 0 {
			s.CursorY--
		}
	case key.KeyDown:
		if s.CursorY < s.Rows-1 {
			s.CursorY++
		}
	}
}

// isMovement reports whether k is handled by MoveCursor.
func isMovement(k key.Key) bool {
	switch k.Type {
	case key.KeyUp, key.KeyDown, key.KeyLeft, key.KeyRight, key.KeyPageUp, key.KeyPageDown:
		return true
	}
	return false
}
