package terminal

import (
	"errors"
	"fmt"
)

var (
	// ErrTerminalUnavailable is returned when the terminal cannot enter raw mode or report its size
	ErrTerminalUnavailable = errors.New("terminal unavailable")

	// ErrIO is returned when writing or flushing to the terminal fails
	ErrIO = errors.New("terminal io")
)

// Unavailable wraps err so it matches ErrTerminalUnavailable, keeping the cause
func Unavailable(op string, err error) error {
	if err == nil {
		return fmt.Errorf("%s: %w", op, ErrTerminalUnavailable)
	}
	if errors.Is(err, ErrTerminalUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrTerminalUnavailable, err)
}

// ioError wraps err so it matches ErrIO
func ioError(op string, err error) error {
	if errors.Is(err, ErrIO) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrIO, err)
}
