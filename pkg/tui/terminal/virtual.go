// ABOUTME: VirtualTerminal implements Terminal for testing without a real TTY.
// ABOUTME: Serves scripted input bytes and timeouts, captures output, tracks raw-mode calls.

package terminal

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// inputItem is one scripted ReadByte result: a byte, or a timeout.
type inputItem struct {
	b       byte
	timeout bool
}

// VirtualTerminal is a fake Terminal for unit tests.
// Reads drain the scripted input; once it is empty ReadByte reports a
// timeout, or io.EOF after CloseInput.
type VirtualTerminal struct {
	mu         sync.Mutex
	buf        bytes.Buffer
	input      []inputItem
	closed     bool
	width      int
	height     int
	sizeErr    error
	writeErr   error
	writes     int
	rawMode    bool
	enterCount int
	exitCount  int
}

// NewVirtualTerminal returns a VirtualTerminal with the given dimensions.
func NewVirtualTerminal(width, height int) *VirtualTerminal {
	return &VirtualTerminal{
		width:  width,
		height: height,
	}
}

// EnableRawMode records a raw-mode entry.
func (v *VirtualTerminal) EnableRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = true
	v.enterCount++
	return nil
}

// DisableRawMode records a raw-mode exit.
func (v *VirtualTerminal) DisableRawMode() error {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.rawMode = false
	v.exitCount++
	return nil
}

// Size returns the configured terminal dimensions, or the configured error.
func (v *VirtualTerminal) Size() (width, height int, err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.sizeErr != nil {
		return 0, 0, v.sizeErr
	}
	return v.width, v.height, nil
}

// Write appends data to the internal buffer.
func (v *VirtualTerminal) Write(p []byte) (int, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.writeErr != nil {
		return 0, v.writeErr
	}
	v.writes++
	n, err := v.buf.Write(p)
	if err != nil {
		return n, fmt.Errorf("writing to virtual buffer: %w", err)
	}
	return n, nil
}

// ReadByte pops the next scripted input item.
func (v *VirtualTerminal) ReadByte() (byte, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(v.input) == 0 {
		if v.closed {
			return 0, io.EOF
		}
		return 0, ErrReadTimeout
	}
	item := v.input[0]
	v.input = v.input[1:]
	if item.timeout {
		return 0, ErrReadTimeout
	}
	return item.b, nil
}

// --- Test helpers (not part of Terminal interface) ---

// Feed queues input bytes.
func (v *VirtualTerminal) Feed(p ...byte) {
	v.mu.Lock()
	defer v.mu.Unlock()

	for _, b := range p {
		v.input = append(v.input, inputItem{b: b})
	}
}

// FeedString queues the bytes of s.
func (v *VirtualTerminal) FeedString(s string) {
	v.Feed([]byte(s)...)
}

// FeedTimeout queues a single read that times out.
func (v *VirtualTerminal) FeedTimeout() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.input = append(v.input, inputItem{timeout: true})
}

// CloseInput makes reads past the scripted input fail with io.EOF.
func (v *VirtualTerminal) CloseInput() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.closed = true
}

// Output returns everything written so far.
func (v *VirtualTerminal) Output() string {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.buf.String()
}

// Reset clears the output buffer and the write counter.
func (v *VirtualTerminal) Reset() {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.buf.Reset()
	v.writes = 0
}

// WriteCount returns how many Write calls succeeded since the last Reset.
func (v *VirtualTerminal) WriteCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.writes
}

// IsRawMode reports whether raw mode is currently active.
func (v *VirtualTerminal) IsRawMode() bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.rawMode
}

// EnterCount returns how many times EnableRawMode was called.
func (v *VirtualTerminal) EnterCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.enterCount
}

// ExitCount returns how many times DisableRawMode was called.
func (v *VirtualTerminal) ExitCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()

	return v.exitCount
}

// SetSizeError makes Size fail with err; nil clears it.
func (v *VirtualTerminal) SetSizeError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.sizeErr = err
}

// SetWriteError makes Write fail with err; nil clears it.
func (v *VirtualTerminal) SetWriteError(err error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	v.writeErr = err
}
