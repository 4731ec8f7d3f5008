// ABOUTME: RestoreOnPanic recovers from panics, clears the screen, restores the terminal, prints the stack.
// ABOUTME: Intended for use as a deferred call in the goroutine that owns the terminal.

package terminal

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
)

// RestoreOnPanic should be deferred right after raw mode is enabled. On
// panic it clears the screen, shows the cursor, leaves raw mode via the
// provided Terminal, prints the panic value and stack trace, then exits
// with code 1.
func RestoreOnPanic(t Terminal) {
	r := recover()
	if r == nil {
		return
	}
	restoreAfterPanic(t, r, debug.Stack(), os.Stderr)
	os.Exit(1)
}

// restoreAfterPanic does the best-effort cleanup for RestoreOnPanic.
func restoreAfterPanic(t Terminal, r any, stack []byte, diag io.Writer) {
	_, _ = t.Write([]byte("\x1b[2J\x1b[H\x1b[?25h"))
	_ = t.DisableRawMode()

	fmt.Fprintf(diag, "\npanic: %v\n\n%s\n", r, stack)
}
