// ABOUTME: Defines the Terminal interface for raw mode, size queries, byte input, and output.
// ABOUTME: Abstracts terminal operations so implementations can target real or virtual terminals.

package terminal

import "errors"

var (
	// ErrNotATerminal is returned when raw mode is requested on a non-tty.
	ErrNotATerminal = errors.New("not a terminal")

	// ErrUnsupported is returned by MakeRaw on platforms without termios.
	ErrUnsupported = errors.New("raw mode is not supported on this platform")

	// ErrReadTimeout is returned by ReadByte when no byte arrived within
	// the raw-mode inter-byte timeout. It is not a failure: callers poll again.
	ErrReadTimeout error = timeoutError{}
)

// timeoutError satisfies the net.Error style Timeout() contract so callers
// outside this package can recognize it without importing terminal.
type timeoutError struct{}

func (timeoutError) Error() string { return "terminal read timed out" }
func (timeoutError) Timeout() bool { return true }

// Terminal abstracts low-level terminal operations: raw mode,
// size queries, single-byte input with a bounded wait, and output.
type Terminal interface {
	EnableRawMode() error
	DisableRawMode() error
	Size() (width, height int, err error)
	Write(p []byte) (n int, err error)
	ReadByte() (byte, error)
}
