// Package logging builds the application logger.
// The terminal is in raw mode while the layout is live, so output goes to a
// file or nowhere, never to stdout or stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/splitterm/config"
)

// New returns a logger for cfg and a closer for its output
func New(cfg config.Log) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	if cfg.File == "" {
		return log.New(io.Discard), nopCloser{}, nil
	}

	if dir := filepath.Dir(cfg.File); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, fmt.Errorf("logging: %w", err)
		}
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("logging: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		Level:           level,
		Prefix:          "splitterm",
		ReportTimestamp: true,
	})
	return logger, f, nil
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
