// ABOUTME: Tests for the Decoder state machine over scripted byte streams with timeouts.
// ABOUTME: Covers arrows, page keys, bare Escape fallbacks, idle hook, and fatal read errors.

package key

import (
	"errors"
	"io"
	"os"
	"testing"
)

// timeout marks a scripted read that times out.
const timeout = -1

// scriptReader replays a fixed sequence of bytes and timeouts, then
// fails with io.EOF.
type scriptReader struct {
	items []int
	reads int
}

func (s *scriptReader) ReadByte() (byte, error) {
	s.reads++
	if len(s.items) == 0 {
		return 0, io.EOF
	}
	item := s.items[0]
	s.items = s.items[1:]
	if item == timeout {
		return 0, os.ErrDeadlineExceeded
	}
	return byte(item), nil
}

func script(parts ...any) *scriptReader {
	r := &scriptReader{}
	for _, p := range parts {
		switch v := p.(type) {
		case string:
			for i := 0; i < len(v); i++ {
				r.items = append(r.items, int(v[i]))
			}
		case int:
			r.items = append(r.items, v)
		}
	}
	return r
}

func TestDecoder_ReadKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    *scriptReader
		want     Key
		leftover int
	}{
		{name: "plain char", input: script("a"), want: Char('a')},
		{name: "ctrl+q", input: script("\x11"), want: Char(QuitByte)},
		{name: "carriage return", input: script("\r"), want: Char('\r')},
		{name: "high byte", input: script("\xc3"), want: Char(0xc3)},

		{name: "arrow up", input: script("\x1b[A"), want: Key{Type: KeyUp}},
		{name: "arrow down", input: script("\x1b[B"), want: Key{Type: KeyDown}},
		{name: "arrow right", input: script("\x1b[C"), want: Key{Type: KeyRight}},
		{name: "arrow left", input: script("\x1b[D"), want: Key{Type: KeyLeft}},
		{name: "page up", input: script("\x1b[5~"), want: Key{Type: KeyPageUp}},
		{name: "page down", input: script("\x1b[6~"), want: Key{Type: KeyPageDown}},

		{name: "unmapped tilde sequence", input: script("\x1b[9~"), want: Key{Type: KeyEscape}},
		{name: "delete is unmapped", input: script("\x1b[3~"), want: Key{Type: KeyEscape}},
		{name: "digit without tilde", input: script("\x1b[5x"), want: Key{Type: KeyEscape}},
		{name: "unmapped letter", input: script("\x1b[H"), want: Key{Type: KeyEscape}},
		{name: "SS3 is not CSI", input: script("\x1bOA"), want: Key{Type: KeyEscape}, leftover: 1},
		{name: "alt+x", input: script("\x1bx"), want: Key{Type: KeyEscape}},

		{name: "lone escape", input: script("\x1b", timeout), want: Key{Type: KeyEscape}},
		{name: "escape bracket then timeout", input: script("\x1b[", timeout), want: Key{Type: KeyEscape}},
		{name: "escape bracket digit then timeout", input: script("\x1b[5", timeout), want: Key{Type: KeyEscape}},

		{name: "timeouts before key are retried", input: script(timeout, timeout, timeout, "z"), want: Char('z')},
		{name: "arrow after idle polls", input: script(timeout, "\x1b[A"), want: Key{Type: KeyUp}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			d := NewDecoder(tt.input)
			got, err := d.ReadKey()
			if err != nil {
				t.Fatalf("ReadKey() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadKey() = %v, want %v", got, tt.want)
			}
			if len(tt.input.items) != tt.leftover {
				t.Errorf("unconsumed bytes = %d, want %d", len(tt.input.items), tt.leftover)
			}
		})
	}
}

func TestDecoder_OneKeyPerCall(t *testing.T) {
	t.Parallel()

	d := NewDecoder(script("\x1b[Ab\x1b[6~\x1b", timeout, "q"))
	want := []Key{
		{Type: KeyUp},
		Char('b'),
		{Type: KeyPageDown},
		{Type: KeyEscape},
		Char('q'),
	}
	for i, w := range want {
		got, err := d.ReadKey()
		if err != nil {
			t.Fatalf("ReadKey() #%d unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("ReadKey() #%d = %v, want %v", i, got, w)
		}
	}
}

func TestDecoder_FatalReadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input *scriptReader
	}{
		{name: "eof at start", input: script()},
		{name: "eof after escape", input: script("\x1b")},
		{name: "eof after bracket", input: script("\x1b[")},
		{name: "eof after digit", input: script("\x1b[5")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewDecoder(tt.input).ReadKey()
			if !errors.Is(err, io.EOF) {
				t.Fatalf("ReadKey() error = %v, want wrapped io.EOF", err)
			}
		})
	}
}

func TestDecoder_IdleHook(t *testing.T) {
	t.Parallel()

	calls := 0
	d := NewDecoder(script(timeout, timeout, "k"))
	d.Idle = func() error {
		calls++
		return nil
	}

	got, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey() unexpected error: %v", err)
	}
	if got != Char('k') {
		t.Errorf("ReadKey() = %v, want k", got)
	}
	if calls != 2 {
		t.Errorf("Idle called %d times, want 2", calls)
	}
}

func TestDecoder_IdleHookAborts(t *testing.T) {
	t.Parallel()

	stop := errors.New("stop")
	r := script(timeout, "k")
	d := NewDecoder(r)
	d.Idle = func() error { return stop }

	if _, err := d.ReadKey(); !errors.Is(err, stop) {
		t.Fatalf("ReadKey() error = %v, want %v", err, stop)
	}
	if r.reads != 1 {
		t.Errorf("reads = %d, want 1 (no read after Idle fails)", r.reads)
	}
}

func TestDecoder_IdleNotCalledInsideSequence(t *testing.T) {
	t.Parallel()

	d := NewDecoder(script("\x1b", timeout))
	d.Idle = func() error {
		t.Error("Idle must not run while a sequence is pending")
		return nil
	}
	got, err := d.ReadKey()
	if err != nil {
		t.Fatalf("ReadKey() unexpected error: %v", err)
	}
	if got.Type != KeyEscape {
		t.Errorf("ReadKey() = %v, want Escape", got)
	}
}

func TestIsTimeout(t *testing.T) {
	t.Parallel()

	wrapped := errors.Join(errors.New("context"), os.ErrDeadlineExceeded)
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "nil", err: nil, want: false},
		{name: "deadline exceeded", err: os.ErrDeadlineExceeded, want: true},
		{name: "wrapped deadline", err: wrapped, want: true},
		{name: "eof", err: io.EOF, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}
