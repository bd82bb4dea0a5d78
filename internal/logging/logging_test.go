package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNew_EmptyPathDiscards(t *testing.T) {
	l, closer, err := New("", slog.LevelDebug)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Enabled(t.Context(), slog.LevelError) {
		t.Fatalf("discard logger should not be enabled")
	}
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "querybox.log")
	l, closer, err := New(path, slog.LevelInfo)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	l.Debug("hidden")
	l.Info("focus changed", "to", "Editing")
	if err := closer.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	got := string(data)
	if !strings.Contains(got, "focus changed") || !strings.Contains(got, "to=Editing") {
		t.Fatalf("log missing record: %q", got)
	}
	if strings.Contains(got, "hidden") {
		t.Fatalf("debug record written at info level: %q", got)
	}
}

func TestNew_BadPath(t *testing.T) {
	_, _, err := New(filepath.Join(t.TempDir(), "missing", "dir", "q.log"), slog.LevelInfo)
	if err == nil {
		t.Fatalf("expected error for unwritable path")
	}
}

func TestNewWithWriter_Level(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, slog.LevelWarn)
	l.Info("skip")
	l.Warn("keep")
	if got := buf.String(); strings.Contains(got, "skip") || !strings.Contains(got, "keep") {
		t.Fatalf("unexpected output: %q", got)
	}
}
