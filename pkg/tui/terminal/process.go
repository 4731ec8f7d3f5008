// ABOUTME: ProcessTerminal implements Terminal over stdin/stdout using x/sys termios and x/term.
// ABOUTME: Holds the raw-mode guard so DisableRawMode can be called from any exit path.

package terminal

import (
	"fmt"
	"os"
	"sync"

	"golang.org/x/term"
)

// ProcessTerminal is a real terminal backed by a pair of files,
// normally os.Stdin and os.Stdout.
type ProcessTerminal struct {
	mu  sync.Mutex
	in  *os.File
	out *os.File
	raw *RawMode

	rbuf [1]byte
}

// NewProcessTerminal returns a ProcessTerminal on the process's stdin and stdout.
func NewProcessTerminal() *ProcessTerminal {
	return NewFileTerminal(os.Stdin, os.Stdout)
}

// NewFileTerminal returns a ProcessTerminal reading from in and writing to out.
// Both usually refer to the same tty, e.g. the slave side of a pty.
func NewFileTerminal(in, out *os.File) *ProcessTerminal {
	return &ProcessTerminal{in: in, out: out}
}

// EnableRawMode switches the input side to raw mode, saving the previous
// attributes. Calling it while raw mode is already active is a no-op.
func (t *ProcessTerminal) EnableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.raw != nil {
		return nil
	}
	raw, err := MakeRaw(int(t.in.Fd()))
	if err != nil {
		return fmt.Errorf("entering raw mode: %w", err)
	}
	t.raw = raw
	return nil
}

// DisableRawMode restores the attributes saved by EnableRawMode.
// It is idempotent.
func (t *ProcessTerminal) DisableRawMode() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.raw == nil {
		return nil
	}
	err := t.raw.Restore()
	t.raw = nil
	if err != nil {
		return fmt.Errorf("exiting raw mode: %w", err)
	}
	return nil
}

// Size returns the dimensions reported by the kernel for the output side.
func (t *ProcessTerminal) Size() (width, height int, err error) {
	w, h, err := term.GetSize(int(t.out.Fd()))
	if err != nil {
		return 0, 0, fmt.Errorf("getting terminal size: %w", err)
	}
	return w, h, nil
}

// Write sends bytes to the output side.
func (t *ProcessTerminal) Write(p []byte) (int, error) {
	n, err := t.out.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to terminal: %w", err)
	}
	return n, nil
}
