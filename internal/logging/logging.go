// Package logging builds the CLI logger: text on stderr, plus JSON lines in a
// file when one is configured.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	slogmulti "github.com/samber/slog-multi"
)

// Options configures New.
type Options struct {
	Level slog.Leveler
	// Stderr receives the text handler output; os.Stderr when nil.
	Stderr io.Writer
	// File, when set, is opened for append and receives JSON records.
	File string
}

// New returns a logger fanning out to every configured handler and a close
// func releasing the log file.
func New(opts Options) (*slog.Logger, func() error, error) {
	level := opts.Level
	if level == nil {
		level = slog.LevelWarn
	}
	stderr := opts.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	handlers := []slog.Handler{
		slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}),
	}
	closer := func() error { return nil }

	if opts.File != "" {
		f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("logging: open %s: %w", opts.File, err)
		}
		handlers = append(handlers, slog.NewJSONHandler(f, &slog.HandlerOptions{Level: level}))
		closer = f.Close
	}

	return slog.New(slogmulti.Fanout(handlers...)), closer, nil
}
