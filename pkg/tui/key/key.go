// ABOUTME: Defines the Key type produced by the Decoder for each keypress.
// ABOUTME: Covers raw character bytes, arrows, page keys, and bare Escape.

package key

import "fmt"

// Key represents a decoded keyboard input event.
type Key struct {
	Type KeyType
	Byte byte // For KeyChar
}

// KeyType enumerates the kinds of key events the editor can receive.
type KeyType int

const (
	KeyChar     KeyType = iota // Single input byte, including control bytes
	KeyUp                      // Arrow up
	KeyDown                    // Arrow down
	KeyLeft                    // Arrow left
	KeyRight                   // Arrow right
	KeyPageUp                  // Page Up
	KeyPageDown                // Page Down
	KeyEscape                  // Escape, or any sequence that could not be resolved
)

// escByte starts every escape sequence.
const escByte = 0x1b

// QuitByte is Ctrl-Q.
const QuitByte byte = 'q' & 0x1f

// CtrlKey returns the byte a terminal sends for Ctrl and k.
func CtrlKey(k byte) byte {
	return k & 0x1f
}

// Char returns the Key for a plain input byte.
func Char(b byte) Key {
	return Key{Type: KeyChar, Byte: b}
}

// IsChar reports whether k is the character b.
func (k Key) IsChar(b byte) bool {
	return k.Type == KeyChar && k.Byte == b
}

// keyTypeNames provides human-readable labels for each non-character KeyType.
var keyTypeNames = map[KeyType]string{
	KeyUp:       "Up",
	KeyDown:     "Down",
	KeyLeft:     "Left",
	KeyRight:    "Right",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEscape:   "Escape",
}

// String returns a human-readable representation of the Key for debug display.
func (k Key) String() string {
	if k.Type == KeyChar {
		return formatChar(k.Byte)
	}
	if name, ok := keyTypeNames[k.Type]; ok {
		return name
	}
	return "Unknown"
}

// formatChar renders control bytes as Ctrl+X and printable ASCII as itself.
func formatChar(b byte) string {
	switch {
	case b < 0x20:
		return "Ctrl+" + string(rune(b|0x40))
	case b == 0x7f:
		return "Backspace"
	case b < 0x7f:
		return string(rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
