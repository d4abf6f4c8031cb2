package terminal

// Backend abstracts the physical terminal output stream.
// Layout code is written against this capability set only, so the unix
// terminal and the headless recorder are interchangeable.
type Backend interface {
	// Lifecycle
	// Init enters raw mode. Errors match ErrTerminalUnavailable
	Init() error
	// Fini leaves raw mode and restores the saved terminal state. Safe to call multiple times
	Fini()

	// Capabilities
	// Size returns terminal dimensions in cells. Errors match ErrTerminalUnavailable
	Size() (width, height int, err error)
	// Colors returns the number of colors the terminal reports, for diagnostics only
	Colors() int

	// I/O
	// Write queues raw bytes for output. Errors match ErrIO
	Write(p []byte) error
	// Flush forces queued output to the terminal. Errors match ErrIO
	Flush() error
}

// Options configures the unix backend
type Options struct {
	// AltScreen switches to the alternate screen buffer on Init and back on Fini
	AltScreen bool
	// HideCursor hides the cursor on Init and shows it on Fini
	HideCursor bool
}
