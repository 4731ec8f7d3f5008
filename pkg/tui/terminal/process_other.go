// ABOUTME: Fallback single-byte reads for ProcessTerminal on platforms without unix.Read.
// ABOUTME: An empty read or EOF surfaces as ErrReadTimeout, matching the unix behavior.

//go:build !unix

package terminal

import (
	"errors"
	"fmt"
	"io"
)

// ReadByte reads one byte from the input side.
func (t *ProcessTerminal) ReadByte() (byte, error) {
	n, err := t.in.Read(t.rbuf[:])
	switch {
	case errors.Is(err, io.EOF), err == nil && n == 0:
		return 0, ErrReadTimeout
	case err != nil:
		return 0, fmt.Errorf("reading terminal input: %w", err)
	}
	return t.rbuf[0], nil
}
