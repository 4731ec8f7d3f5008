// ABOUTME: Tests for the leveled logging package
// ABOUTME: Validates level filtering and output redirection

package log

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

// capture redirects output for the duration of the test. Tests using it
// share global state and must not run in parallel.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	savedLevel := GetLevel()
	t.Cleanup(func() {
		SetOutput(prev)
		SetLevel(savedLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	savedLevel := GetLevel()
	defer SetLevel(savedLevel)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("key %s", "Up")
	if got := buf.String(); got != "[DEBUG] key Up\n" {
		t.Errorf("output = %q, want %q", got, "[DEBUG] key Up\n")
	}
}

func TestAllLevels(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	for _, want := range []string{"[DEBUG] debug: 1", "[INFO] info: 2", "[WARN] warn: 3", "[ERROR] error: 4"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("output %q missing %q", buf.String(), want)
		}
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := capture(t)
	SetLevel(LevelError + 4)

	Warn("hidden")
	Error("shown")
	if got := buf.String(); got != "[ERROR] shown\n" {
		t.Errorf("output = %q, want only the error line", got)
	}
}

func TestSetOutputNilDiscards(t *testing.T) {
	capture(t)
	prev := SetOutput(nil)
	if _, ok := prev.(*bytes.Buffer); !ok {
		t.Fatalf("SetOutput returned %T, want the previous *bytes.Buffer", prev)
	}
	if cur := SetOutput(prev); cur != io.Discard {
		t.Errorf("SetOutput(nil) installed %v, want io.Discard", cur)
	}
}
