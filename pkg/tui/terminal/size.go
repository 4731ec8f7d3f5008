// ABOUTME: Viewport size detection: kernel query first, cursor-position report as fallback.
// ABOUTME: The fallback parks the cursor at bottom-right and parses ESC [ rows ; cols R.

package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// cursorReportMax bounds the bytes accepted for a cursor position report.
const cursorReportMax = 32

const (
	moveBottomRight = "\x1b[999C\x1b[999B"
	requestCursor   = "\x1b[6n"
)

var (
	// ErrMalformedReport is returned when a cursor report does not match ESC [ rows ; cols R.
	ErrMalformedReport = errors.New("malformed cursor position report")

	// ErrReportTooLong is returned when the report exceeds cursorReportMax bytes.
	ErrReportTooLong = errors.New("cursor position report too long")
)

// WindowSize returns the viewport dimensions of t. The kernel query is
// tried first; when it fails or reports zero columns the cursor is moved
// as far down-right as the terminal allows and its position is asked for.
func WindowSize(t Terminal) (rows, cols int, err error) {
	w, h, qerr := t.Size()
	if qerr == nil && w > 0 && h > 0 {
		return h, w, nil
	}

	rows, cols, perr := probeCursorPosition(t)
	if perr == nil {
		return rows, cols, nil
	}
	if qerr != nil {
		perr = errors.Join(qerr, perr)
	}
	return 0, 0, fmt.Errorf("determining window size: %w", perr)
}

func probeCursorPosition(t Terminal) (rows, cols int, err error) {
	if _, err := t.Write([]byte(moveBottomRight + requestCursor)); err != nil {
		return 0, 0, fmt.Errorf("requesting cursor position: %w", err)
	}

	report, err := readCursorReport(t)
	if err != nil {
		return 0, 0, err
	}
	rows, cols, err = ParseCursorReport(report)
	if err != nil {
		return 0, 0, err
	}
	if rows == 0 || cols == 0 {
		return 0, 0, fmt.Errorf("%w: zero dimension %dx%d", ErrMalformedReport, rows, cols)
	}
	return rows, cols, nil
}

// readCursorReport collects bytes up to the terminating 'R'. A read timeout
// ends the report early; whatever arrived is left for the parser to judge.
func readCursorReport(r io.ByteReader) ([]byte, error) {
	buf := make([]byte, 0, cursorReportMax)
	for len(buf) < cursorReportMax {
		b, err := r.ReadByte()
		if errors.Is(err, ErrReadTimeout) {
			return buf, nil
		}
		if err != nil {
			return nil, fmt.Errorf("reading cursor position report: %w", err)
		}
		if b == 'R' {
			return buf, nil
		}
		buf = append(buf, b)
	}
	return nil, ErrReportTooLong
}

// ParseCursorReport parses a cursor position report of the form
// ESC [ rows ; cols, with or without the trailing 'R'.
func ParseCursorReport(report []byte) (row, col int, err error) {
	body, ok := bytes.CutPrefix(bytes.TrimSuffix(report, []byte{'R'}), []byte("\x1b["))
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, report)
	}
	rowText, colText, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrMalformedReport, report)
	}

	r, err := strconv.ParseUint(string(rowText), 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: row %q", ErrMalformedReport, rowText)
	}
	c, err := strconv.ParseUint(string(colText), 10, 16)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q", ErrMalformedReport, colText)
	}
	return int(r), int(c), nil
}
