package core

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"
	"sync"

	"github.com/lixenwraith/splitterm/terminal"
)

var (
	restoreMu sync.Mutex
	restoreFn func() error

	// Overridden in tests
	exit               = os.Exit
	crashOut io.Writer = os.Stderr
)

// SetRestore registers the function that returns the terminal to normal mode on crash or signal.
// Passing nil falls back to terminal.EmergencyReset on stdout.
func SetRestore(fn func() error) {
	restoreMu.Lock()
	restoreFn = fn
	restoreMu.Unlock()
}

// Restore runs the registered restore function, or an emergency reset if none is registered
func Restore() {
	restoreMu.Lock()
	fn := restoreFn
	restoreMu.Unlock()

	if fn != nil {
		if err := fn(); err == nil {
			return
		}
	}
	terminal.EmergencyReset(os.Stdout)
}

// HandleCrash is the unified panic handler that restores the terminal and prints the stack trace
func HandleCrash(r any) {
	if r == nil {
		return
	}

	Restore()
	os.Stdout.Sync()

	// Raw mode may survive a failed restore, so use explicit CR
	fmt.Fprintf(crashOut, "\r\n\x1b[31mCRASH DETECTED: %v\x1b[0m\r\n", r)
	fmt.Fprintf(crashOut, "Stack Trace:\r\n%s\r\n", debug.Stack())

	exit(1)
}

// Go runs a function in a new goroutine with panic recovery.
// Use this instead of the 'go' keyword to ensure terminal cleanup on crash.
func Go(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				HandleCrash(r)
			}
		}()
		fn()
	}()
}
