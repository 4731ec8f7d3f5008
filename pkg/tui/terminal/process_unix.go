// ABOUTME: Unix single-byte reads for ProcessTerminal straight from the input fd.
// ABOUTME: A zero-byte read is the VTIME expiry and surfaces as ErrReadTimeout.

//go:build unix

package terminal

import (
	"errors"
	"fmt"

	"golang.org/x/sys/unix"
)

// ReadByte reads one byte from the input side. With raw mode active the
// kernel returns after at most one decisecond; an empty read is reported
// as ErrReadTimeout. EINTR is retried.
func (t *ProcessTerminal) ReadByte() (byte, error) {
	fd := int(t.in.Fd())
	for {
		n, err := unix.Read(fd, t.rbuf[:])
		switch {
		case errors.Is(err, unix.EINTR):
			continue
		case errors.Is(err, unix.EAGAIN):
			return 0, ErrReadTimeout
		case err != nil:
			return 0, fmt.Errorf("reading terminal input: %w", err)
		case n == 0:
			return 0, ErrReadTimeout
		}
		return t.rbuf[0], nil
	}
}
