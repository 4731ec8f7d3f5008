//go:build !(aix || darwin || dragonfly || freebsd || linux || netbsd || openbsd || solaris || zos)

package terminal

// RawMode is a placeholder on platforms without termios.
type RawMode struct{}

// MakeRaw always fails with ErrUnsupported on this platform.
func MakeRaw(fd int) (*RawMode, error) {
	return nil, ErrUnsupported
}

// Restore is a no-op.
func (m *RawMode) Restore() error {
	return nil
}
