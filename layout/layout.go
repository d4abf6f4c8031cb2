// Package layout splits the terminal into a content region and a one-row
// status bar, and arbitrates access to the single terminal output stream
// shared by both.
//
// Lifecycle:
//  1. New enters raw mode, clears the screen and records the terminal size
//  2. ContentWindow / StatusWindow hand out region handles over the shared Sink
//  3. Close clears the screen, resets colors and leaves raw mode
//
// Size is captured once; resize events are not tracked.
package layout

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/lixenwraith/splitterm/terminal"
)

// StatusHeight is the number of rows reserved for the status bar
const StatusHeight = 1

// ErrTerminalTooSmall is returned when the terminal cannot fit both regions.
// It matches terminal.ErrTerminalUnavailable as well.
var ErrTerminalTooSmall = errors.New("terminal too small")

// Layout owns the terminal geometry and the shared output sink
type Layout struct {
	height int
	width  int
	colors int

	sink   *Sink
	logger *log.Logger

	closeOnce sync.Once
	closeErr  error
}

// Option configures a Layout
type Option func(*Layout)

// WithLogger sets the logger used for lifecycle diagnostics
func WithLogger(logger *log.Logger) Option {
	return func(l *Layout) {
		if logger != nil {
			l.logger = logger
		}
	}
}

// New takes over the terminal behind backend.
// On failure the backend is released and the error matches terminal.ErrTerminalUnavailable
// or terminal.ErrIO.
func New(backend terminal.Backend, opts ...Option) (*Layout, error) {
	l := &Layout{
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(l)
	}

	if err := backend.Init(); err != nil {
		return nil, terminal.Unavailable("layout", err)
	}

	l.colors = backend.Colors()
	l.logger.Debug("colors available", "count", l.colors)

	l.sink = newSink(backend)
	if err := l.Clear(); err != nil {
		backend.Fini()
		return nil, fmt.Errorf("layout: initial clear: %w", err)
	}

	width, height, err := backend.Size()
	if err != nil {
		backend.Fini()
		return nil, terminal.Unavailable("layout", err)
	}
	if height < StatusHeight+1 || width < 1 {
		backend.Fini()
		return nil, fmt.Errorf("layout: %dx%d: %w: %w", width, height, ErrTerminalTooSmall, terminal.ErrTerminalUnavailable)
	}

	l.width = width
	l.height = height
	l.logger.Debug("layout ready", "width", width, "height", height)
	return l, nil
}

// Height returns the terminal height captured at construction
func (l *Layout) Height() int {
	return l.height
}

// Width returns the terminal width captured at construction
func (l *Layout) Width() int {
	return l.width
}

// Colors returns the color count reported at construction
func (l *Layout) Colors() int {
	return l.colors
}

// Sink returns the shared output handle
func (l *Layout) Sink() *Sink {
	return l.sink
}

// ContentWindow returns a handle over every row except the status rows
func (l *Layout) ContentWindow() *Window {
	return newWindow(l.sink,
		Position{Row: 0, Col: 0},
		Size{Height: l.height - StatusHeight, Width: l.width},
	)
}

// StatusWindow returns a handle over the bottom status rows
func (l *Layout) StatusWindow() *Window {
	return newWindow(l.sink,
		Position{Row: l.height - StatusHeight, Col: 0},
		Size{Height: StatusHeight, Width: l.width},
	)
}

// Clear resets colors to terminal defaults, erases the screen and flushes
func (l *Layout) Clear() error {
	return l.sink.With(writeClear)
}

// Close clears the screen, resets colors and leaves raw mode.
// Safe to call multiple times; only the first call does work.
func (l *Layout) Close() error {
	l.closeOnce.Do(func() {
		l.logger.Info("clear terminal")
		l.closeErr = l.sink.close(writeClear)
		if l.closeErr != nil {
			l.logger.Warn("terminal restore incomplete", "err", l.closeErr)
		}
	})
	return l.closeErr
}

// Recover restores the terminal if the calling goroutine is panicking, then re-panics.
// Use as: defer l.Recover()
func (l *Layout) Recover() {
	if r := recover(); r != nil {
		l.Close()
		panic(r)
	}
}

func writeClear(buf *bytes.Buffer) error {
	terminal.WriteResetColors(buf)
	terminal.WriteClear(buf)
	return nil
}
