// ABOUTME: Termios-based raw mode: snapshot, modify, apply; RawMode restores the snapshot once.
// ABOUTME: Reads return after one decisecond with zero or more bytes (VMIN=0, VTIME=1).

//go:build aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos

package terminal

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// RawMode is the guard returned by MakeRaw. It owns the attributes the
// terminal had before raw mode was applied.
type RawMode struct {
	fd       int
	original unix.Termios

	once sync.Once
	err  error
}

// MakeRaw puts the terminal referred to by fd into raw mode and returns a
// guard whose Restore puts it back. Callers are expected to defer Restore.
func MakeRaw(fd int) (*RawMode, error) {
	if !term.IsTerminal(fd) {
		return nil, ErrNotATerminal
	}

	orig, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}

	raw := rawAttributes(*orig)
	if err := unix.IoctlSetTermios(fd, ioctlWriteTermios, &raw); err != nil {
		return nil, fmt.Errorf("applying raw attributes: %w", err)
	}
	return &RawMode{fd: fd, original: *orig}, nil
}

// rawAttributes derives the raw configuration from the original one.
func rawAttributes(t unix.Termios) unix.Termios {
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG
	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = 1
	return t
}

// Restore reapplies the attributes captured by MakeRaw. Only the first
// call touches the terminal; later calls return the first call's result.
func (m *RawMode) Restore() error {
	if m == nil {
		return nil
	}
	m.once.Do(func() {
		orig := m.original
		if err := unix.IoctlSetTermios(m.fd, ioctlWriteTermios, &orig); err != nil {
			m.err = fmt.Errorf("restoring terminal attributes: %w", err)
		}
	})
	return m.err
}
