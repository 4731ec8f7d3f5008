// ABOUTME: Display width and column truncation for single-line text such as the welcome banner
// ABOUTME: Grapheme-aware via uniseg + runewidth; fast path for printable ASCII

package width

import (
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// VisibleWidth returns the number of terminal columns s occupies. Wide
// East Asian characters and emoji count as two columns.
func VisibleWidth(s string) int {
	if isPlainASCII(s) {
		return len(s)
	}
	w := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		cluster, s, _, state = uniseg.FirstGraphemeClusterInString(s, state)
		w += graphemeWidth(cluster)
	}
	return w
}

// Truncate returns the longest prefix of s that fits in maxWidth columns.
// Grapheme clusters are never split; a wide cluster that would straddle
// the limit is dropped.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if isPlainASCII(s) {
		if len(s) > maxWidth {
			return s[:maxWidth]
		}
		return s
	}

	used, end := 0, 0
	state := -1
	rest := s
	for len(rest) > 0 {
		var cluster string
		cluster, rest, _, state = uniseg.FirstGraphemeClusterInString(rest, state)
		w := graphemeWidth(cluster)
		if used+w > maxWidth {
			break
		}
		used += w
		end += len(cluster)
	}
	return s[:end]
}

// isPlainASCII returns true if s contains only printable ASCII (0x20-0x7E).
func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

// graphemeWidth returns the display width of a single grapheme cluster.
func graphemeWidth(cluster string) int {
	if len(cluster) == 0 {
		return 0
	}
	// Decode the first rune without allocating a []rune slice.
	r, _ := utf8.DecodeRuneInString(cluster)
	return runewidth.RuneWidth(r)
}
