// Package logging builds the slog logger used by tickr. The terminal is
// owned by the view, so records go to a file or are dropped.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// ParseLevel accepts debug, info, warn or error. Empty means info.
func ParseLevel(s string) (slog.Level, error) {
	var level slog.Level

	s = strings.TrimSpace(s)
	if s == "" {
		return slog.LevelInfo, nil
	}

	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo, fmt.Errorf("invalid log level %q: %w", s, err)
	}

	return level, nil
}

// New returns a text logger writing to path, tagged with a per-run session
// id. An empty path returns a logger that discards everything. The caller
// closes the returned Closer on exit.
func New(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}

	if path == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return NewWithWriter(f, lvl), f, nil
}

// NewWithWriter returns a text logger on w at level with a session attribute.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})

	return slog.New(handler).With("session", uuid.NewString())
}
