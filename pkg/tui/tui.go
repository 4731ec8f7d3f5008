// ABOUTME: Screen renderer: composes a full frame of rows, banner, and cursor into one buffer
// ABOUTME: Each frame is flushed with a single write so the terminal never shows a torn update

package tui

import (
	"fmt"

	"github.com/mauromedda/kilo-go/pkg/tui/width"
)

// VT100 sequences used by the renderer.
const (
	hideCursor  = "\x1b[?25l"
	showCursor  = "\x1b[?25h"
	cursorHome  = "\x1b[H"
	clearScreen = "\x1b[2J"
	clearLine   = "\x1b[K"
	lineBreak   = "\r\n"
)

// DefaultGlyph marks rows that hold no content.
const DefaultGlyph = "~"

// Writer is the minimal interface for terminal output.
type Writer interface {
	Write(p []byte) (n int, err error)
}

// Frame describes what to draw: the viewport and the 0-based cursor.
type Frame struct {
	Rows      int
	Cols      int
	CursorRow int
	CursorCol int
}

// Options configures a Renderer.
type Options struct {
	// Banner is centered on the row one third down the screen.
	Banner string
	// Glyph marks empty rows. It must be one column wide. Defaults to DefaultGlyph.
	Glyph string
}

// Renderer draws frames to a terminal writer.
type Renderer struct {
	writer Writer
	banner string
	glyph  string
}

// New creates a Renderer writing to w.
func New(w Writer, opts Options) *Renderer {
	glyph := opts.Glyph
	if glyph == "" {
		glyph = DefaultGlyph
	}
	return &Renderer{
		writer: w,
		banner: opts.Banner,
		glyph:  glyph,
	}
}

// RenderFrame draws f and positions the cursor, in a single write.
// A frame with no rows or columns draws nothing.
func (r *Renderer) RenderFrame(f Frame) error {
	if f.Rows <= 0 || f.Cols <= 0 {
		return nil
	}

	buf := AcquireBuffer()
	defer ReleaseBuffer(buf)

	buf.AppendString(hideCursor)
	buf.AppendString(cursorHome)
	r.drawRows(buf, f)
	appendCursorPosition(buf, f.CursorRow+1, f.CursorCol+1)
	buf.AppendString(showCursor)

	if _, err := buf.WriteTo(r.writer); err != nil {
		return fmt.Errorf("writing frame: %w", err)
	}
	return nil
}

// ClearScreen erases the screen and homes the cursor.
func (r *Renderer) ClearScreen() error {
	if _, err := r.writer.Write([]byte(clearScreen + cursorHome)); err != nil {
		return fmt.Errorf("clearing screen: %w", err)
	}
	return nil
}

// drawRows emits every viewport row. The last row gets no line break so
// the terminal does not scroll.
func (r *Renderer) drawRows(buf *RenderBuffer, f Frame) {
	bannerRow := f.Rows / 3
	for y := 0; y < f.Rows; y++ {
		if y == bannerRow {
			r.drawBanner(buf, f.Cols)
		} else {
			buf.AppendString(r.glyph)
		}
		buf.AppendString(clearLine)
		if y < f.Rows-1 {
			buf.AppendString(lineBreak)
		}
	}
}

// drawBanner centers the banner in cols columns. When there is padding,
// the first padding column holds the empty-row glyph.
func (r *Renderer) drawBanner(buf *RenderBuffer, cols int) {
	banner := width.Truncate(r.banner, cols)
	padding := (cols - width.VisibleWidth(banner)) / 2
	if padding > 0 {
		buf.AppendString(r.glyph)
		padding--
	}
	for ; padding > 0; padding-- {
		buf.AppendByte(' ')
	}
	buf.AppendString(banner)
}

// appendCursorPosition emits ESC [ row ; col H for 1-based coordinates.
func appendCursorPosition(buf *RenderBuffer, row, col int) {
	buf.AppendString("\x1b[")
	buf.AppendInt(row)
	buf.AppendByte(';')
	buf.AppendInt(col)
	buf.AppendByte('H')
}
