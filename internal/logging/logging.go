// Package logging builds the querybox debug logger.
//
// The terminal belongs to the UI while querybox runs, so records go to a
// file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
)

const prefix = "querybox"

// New returns a text logger writing to path at level, plus the closer for
// the underlying file. An empty path yields a discarding logger.
func New(path string, level slog.Level) (*slog.Logger, io.Closer, error) {
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	f, err := tea.LogToFile(path, prefix)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
	}
	return NewWithWriter(f, level), f, nil
}

// NewWithWriter returns a text logger writing to w at level.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
