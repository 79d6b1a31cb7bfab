package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Notice)
	logger.Debug("hidden debug")
	logger.Noticef("visible %s", "notice")

	out := buf.String()
	if strings.Contains(out, "hidden debug") {
		t.Errorf("Debug message leaked at notice level: %q", out)
	}
	if !strings.Contains(out, "visible notice") {
		t.Errorf("Expected notice message in output, got %q", out)
	}
	if !strings.Contains(out, "[test]") {
		t.Errorf("Expected module name in output, got %q", out)
	}

	buf.Reset()
	SetLevel(Debug)
	logger.Debugf("now %d", 42)
	if !strings.Contains(buf.String(), "now 42") {
		t.Errorf("Expected debug message after raising verbosity, got %q", buf.String())
	}
}

func TestSetSinkKeepsLevel(t *testing.T) {
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	SetLevel(Warning)
	var buf bytes.Buffer
	SetSink(&buf)

	logger := New("sink")
	logger.Notice("below warning")
	logger.Warning("at warning")

	out := buf.String()
	if strings.Contains(out, "below warning") {
		t.Errorf("Level should survive a sink change, got %q", out)
	}
	if !strings.Contains(out, "at warning") {
		t.Errorf("Expected warning in output, got %q", out)
	}

	SetLevel(Level(42))
	buf.Reset()
	logger.Notice("still hidden")
	if strings.Contains(buf.String(), "still hidden") {
		t.Errorf("Unknown level should leave verbosity unchanged, got %q", buf.String())
	}
}
