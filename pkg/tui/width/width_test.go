// ABOUTME: Tests for VisibleWidth and Truncate
// ABOUTME: Covers ASCII, CJK, emoji, combining marks, and truncation at wide boundaries

package width

import "testing"

func TestVisibleWidth(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  int
	}{
		{name: "empty string", input: "", want: 0},
		{name: "ascii", input: "hello", want: 5},
		{name: "banner", input: "Kilo editor -- version 0.0.1", want: 28},
		{name: "cjk", input: "你好", want: 4},
		{name: "emoji", input: "👋", want: 2},
		{name: "combining accent", input: "é", want: 1},
		{name: "mixed", input: "hi 你", want: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := VisibleWidth(tt.input)
			if got != tt.want {
				t.Errorf("VisibleWidth(%q) = %d, want %d", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		max   int
		want  string
	}{
		{name: "fits", input: "hello", max: 10, want: "hello"},
		{name: "exact", input: "hello", max: 5, want: "hello"},
		{name: "ascii cut", input: "hello world", max: 5, want: "hello"},
		{name: "zero width", input: "hello", max: 0, want: ""},
		{name: "negative width", input: "hello", max: -3, want: ""},
		{name: "cjk cut on boundary", input: "你好世界", max: 4, want: "你好"},
		{name: "wide cluster dropped", input: "你好世界", max: 5, want: "你好"},
		{name: "combining kept whole", input: "éé", max: 1, want: "é"},
		{name: "emoji dropped", input: "a👋", max: 2, want: "a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := Truncate(tt.input, tt.max)
			if got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.max, got, tt.want)
			}
			if w := VisibleWidth(got); tt.max > 0 && w > tt.max {
				t.Errorf("VisibleWidth(Truncate(...)) = %d exceeds %d", w, tt.max)
			}
		})
	}
}

func TestIsPlainASCII(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{name: "plain ascii", input: "hello world!", want: true},
		{name: "with escape", input: "hello\x1b[31m", want: false},
		{name: "with tab", input: "a\tb", want: false},
		{name: "empty", input: "", want: true},
		{name: "unicode", input: "café", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := isPlainASCII(tt.input)
			if got != tt.want {
				t.Errorf("isPlainASCII(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func BenchmarkVisibleWidth_ASCII(b *testing.B) {
	s := "Kilo editor -- version 0.0.1"
	for b.Loop() {
		VisibleWidth(s)
	}
}

func BenchmarkTruncate_Unicode(b *testing.B) {
	s := "你好世界 Hello 🌍"
	for b.Loop() {
		Truncate(s, 9)
	}
}
