// ABOUTME: Decoder turns a raw byte stream into one Key per call via a small state machine.
// ABOUTME: Timeouts are retried before a key starts and mean a bare Escape inside a sequence.

package key

import (
	"errors"
	"fmt"
	"io"
)

// Decoder reads keys from a byte source whose ReadByte waits a bounded
// time. A read that times out must return an error with Timeout() true.
type Decoder struct {
	r io.ByteReader

	// Idle, if set, runs each time a read times out while waiting for
	// the first byte of a key. A non-nil error aborts ReadKey.
	Idle func() error
}

// NewDecoder returns a Decoder reading from r.
func NewDecoder(r io.ByteReader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one key has been decoded. Incomplete or unknown
// escape sequences decode to KeyEscape. Only read failures other than
// timeouts are returned as errors.
func (d *Decoder) ReadKey() (Key, error) {
	b, err := d.first()
	if err != nil {
		return Key{}, err
	}
	if b != escByte {
		return Char(b), nil
	}
	return d.escape()
}

// first waits for the first byte of a key, polling through timeouts.
func (d *Decoder) first() (byte, error) {
	for {
		b, err := d.r.ReadByte()
		if err == nil {
			return b, nil
		}
		if !IsTimeout(err) {
			return 0, fmt.Errorf("reading key: %w", err)
		}
		if d.Idle != nil {
			if err := d.Idle(); err != nil {
				return 0, err
			}
		}
	}
}

// next reads a follow-up byte of an escape sequence. ok is false when
// the read timed out.
func (d *Decoder) next() (b byte, ok bool, err error) {
	b, err = d.r.ReadByte()
	if err == nil {
		return b, true, nil
	}
	if IsTimeout(err) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf("reading escape sequence: %w", err)
}

// escape decodes what follows an ESC byte.
func (d *Decoder) escape() (Key, error) {
	seq, err := d.sequence()
	if err != nil {
		return Key{}, err
	}
	return resolve(seq), nil
}

// sequence collects up to three bytes after ESC, stopping at the first
// timeout or as soon as the bytes cannot form a known sequence.
func (d *Decoder) sequence() ([]byte, error) {
	seq := make([]byte, 0, 3)
	for len(seq) < cap(seq) {
		b, ok, err := d.next()
		if err != nil {
			return nil, err
		}
		if !ok {
			break
		}
		seq = append(seq, b)
		if !wantsMore(seq) {
			break
		}
	}
	return seq, nil
}

// wantsMore reports whether seq is a proper prefix of ESC [ digit ~.
func wantsMore(seq []byte) bool {
	switch len(seq) {
	case 1:
		return seq[0] == '['
	case 2:
		return isDigit(seq[1])
	}
	return false
}

// resolve maps the bytes that followed ESC to a Key.
func resolve(seq []byte) Key {
	switch {
	case len(seq) == 2 && seq[0] == '[':
		switch seq[1] {
		case 'A':
			return Key{Type: KeyUp}
		case 'B':
			return Key{Type: KeyDown}
		case 'C':
			return Key{Type: KeyRight}
		case 'D':
			return Key{Type: KeyLeft}
		}
	case len(seq) == 3 && seq[0] == '[' && seq[2] == '~':
		switch seq[1] {
		case '5':
			return Key{Type: KeyPageUp}
		case '6':
			return Key{Type: KeyPageDown}
		}
	}
	return Key{Type: KeyEscape}
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// IsTimeout reports whether err, or an error it wraps, is a timeout.
func IsTimeout(err error) bool {
	var t interface{ Timeout() bool }
	return errors.As(err, &t) && t.Timeout()
}
